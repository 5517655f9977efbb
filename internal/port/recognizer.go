package port

import "context"

// MediaInput carries an uploaded media file for text recognition.
type MediaInput struct {
	Data        []byte
	Filename    string
	ContentType string
}

// TextRecognizer reduces an image to its recognized text.
type TextRecognizer interface {
	RecognizeText(ctx context.Context, input MediaInput) (string, error)
}

// Transcriber reduces an audio recording to its transcribed text.
type Transcriber interface {
	Transcribe(ctx context.Context, input MediaInput) (string, error)
}
