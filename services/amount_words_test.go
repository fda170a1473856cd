package services

import "testing"

func TestIndianWords(t *testing.T) {
	tests := []struct {
		input  int64
		expect string
	}{
		{0, "zero"},
		{7, "seven"},
		{19, "nineteen"},
		{40, "forty"},
		{99, "ninety nine"},
		{100, "one hundred"},
		{101, "one hundred and one"},
		{1000, "one thousand"},
		{1180, "one thousand one hundred and eighty"},
		{100000, "one lakh"},
		{913183, "nine lakh thirteen thousand one hundred and eighty three"},
		{10000000, "one crore"},
		{12345678, "one crore twenty three lakh forty five thousand six hundred and seventy eight"},
		{1000000000, "one hundred crore"},
		{-5, "minus five"},
	}

	for _, tt := range tests {
		got := IndianWords{}.Words(tt.input)
		if got != tt.expect {
			t.Errorf("IndianWords.Words(%d) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestInternationalWords(t *testing.T) {
	tests := []struct {
		input  int64
		expect string
	}{
		{0, "zero"},
		{1180, "one thousand one hundred and eighty"},
		{913183, "nine hundred thirteen thousand one hundred and eighty three"},
		{1000000, "one million"},
		{2500000000, "two billion five hundred million"},
	}

	for _, tt := range tests {
		got := InternationalWords{}.Words(tt.input)
		if got != tt.expect {
			t.Errorf("InternationalWords.Words(%d) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestGrandTotalWords(t *testing.T) {
	tests := []struct {
		name   string
		n      int64
		conv   WordsConverter
		suffix string
		expect string
	}{
		{"title cased with suffix", 1180, IndianWords{}, DefaultWordsSuffix, "One Thousand One Hundred And Eighty Rupees Only"},
		{"zero", 0, IndianWords{}, DefaultWordsSuffix, "Zero Rupees Only"},
		{"nil converter defaults to indian", 100000, nil, DefaultWordsSuffix, "One Lakh Rupees Only"},
		{"no suffix", 12, InternationalWords{}, "", "Twelve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrandTotalWords(tt.n, tt.conv, tt.suffix)
			if got != tt.expect {
				t.Errorf("GrandTotalWords(%d) = %q, want %q", tt.n, got, tt.expect)
			}
		})
	}
}

func TestNewWordsConverter(t *testing.T) {
	if _, ok := NewWordsConverter("International").(InternationalWords); !ok {
		t.Error("expected InternationalWords for \"International\"")
	}
	if _, ok := NewWordsConverter("").(IndianWords); !ok {
		t.Error("expected IndianWords by default")
	}
}
