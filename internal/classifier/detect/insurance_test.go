package detect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"doctriage/internal/classifier/detect"
)

func TestInsuranceCard_TwoSignals_Hit(t *testing.T) {
	// card indicator ("member id") + known insurer
	hit, details := detect.InsuranceCard("aetna member id: w123456789")

	assert.True(t, hit)
	assert.Equal(t, 2, details["signal_count"])
	assert.Equal(t, true, details["has_card_indicator"])
	assert.Equal(t, true, details["has_known_insurer"])
}

func TestInsuranceCard_RxBinAloneMatches(t *testing.T) {
	hit, details := detect.InsuranceCard("rx bin: 610014")

	assert.True(t, hit)
	assert.Equal(t, true, details["has_rx_bin"])
}

func TestInsuranceCard_RxBinNoSpace(t *testing.T) {
	hit, details := detect.InsuranceCard("rxbin 004336 rxpcn adv")

	assert.True(t, hit)
	assert.Equal(t, true, details["has_rx_bin"])
}

func TestInsuranceCard_AntiPatternRejects(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
	}{
		{"explicit disclaimer", "this is not an insurance card. member id: 123 aetna ppo copay $20"},
		{"eob", "eob for member id 123 blue cross ppo"},
		{"billing statement", "billing statement member id 123 cigna copay"},
		{"summary of benefits", "summary of benefits member id 123 kaiser hmo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, details := detect.InsuranceCard(tt.haystack)
			assert.False(t, hit)
			assert.Equal(t, "anti_pattern", details["rejected_reason"])
		})
	}
}

func TestInsuranceCard_SingleSignalNoHit(t *testing.T) {
	hit, details := detect.InsuranceCard("please review your deductible for the year")

	assert.False(t, hit)
	assert.Equal(t, 1, details["signal_count"])
}

func TestInsuranceCard_NetworkPlusInsurer(t *testing.T) {
	hit, _ := detect.InsuranceCard("blue cross blue shield ppo plan")

	assert.True(t, hit)
}
