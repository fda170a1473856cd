package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultWordsSuffix closes the grand total in words.
const DefaultWordsSuffix = "Rupees Only"

// WordsConverter spells out an integer amount in lowercase words. It must not
// panic; unusual input yields a best-effort string.
type WordsConverter interface {
	Words(n int64) string
}

// NewWordsConverter picks a converter by numbering system name:
// "international" (million/billion) or anything else for Indian (lakh/crore).
func NewWordsConverter(system string) WordsConverter {
	if strings.EqualFold(strings.TrimSpace(system), "international") {
		return InternationalWords{}
	}
	return IndianWords{}
}

// GrandTotalWords renders n as title-cased words followed by suffix, e.g.
// "One Thousand One Hundred And Eighty Rupees Only".
func GrandTotalWords(n int64, conv WordsConverter, suffix string) string {
	if conv == nil {
		conv = IndianWords{}
	}
	words := strings.TrimSpace(conv.Words(n))
	titled := cases.Title(language.English).String(words)
	if suffix == "" {
		return titled
	}
	if titled == "" {
		return suffix
	}
	return titled + " " + suffix
}

// IndianWords uses the Indian scale: crore (10^7), lakh (10^5), thousand.
// 913183 → "nine lakh thirteen thousand one hundred and eighty three".
type IndianWords struct{}

func (IndianWords) Words(n int64) string {
	if n == 0 {
		return "zero"
	}
	if n < 0 {
		return "minus " + IndianWords{}.Words(absWords(n))
	}

	var parts []string

	// Anything above 99 crore is spelled as a number of crores.
	if n >= 10000000 {
		crores := n / 10000000
		parts = append(parts, IndianWords{}.Words(crores)+" crore")
		n %= 10000000
	}
	if n >= 100000 {
		parts = append(parts, convertUnder100(n/100000)+" lakh")
		n %= 100000
	}
	if n >= 1000 {
		parts = append(parts, convertUnder100(n/1000)+" thousand")
		n %= 1000
	}
	return joinWithHundreds(parts, n)
}

// InternationalWords uses the short scale: billion, million, thousand.
type InternationalWords struct{}

func (InternationalWords) Words(n int64) string {
	if n == 0 {
		return "zero"
	}
	if n < 0 {
		return "minus " + InternationalWords{}.Words(absWords(n))
	}

	scales := []struct {
		value int64
		name  string
	}{
		{1000000000000000000, "quintillion"},
		{1000000000000000, "quadrillion"},
		{1000000000000, "trillion"},
		{1000000000, "billion"},
		{1000000, "million"},
		{1000, "thousand"},
	}

	var parts []string
	for _, s := range scales {
		if n >= s.value {
			parts = append(parts, convertUnder1000(n/s.value)+" "+s.name)
			n %= s.value
		}
	}
	return joinWithHundreds(parts, n)
}

// joinWithHundreds appends the final 0-999 group, placing "and" before a
// trailing 1-99 remainder when anything precedes it.
func joinWithHundreds(parts []string, n int64) string {
	if n >= 100 {
		parts = append(parts, ones[n/100]+" hundred")
		n %= 100
	}
	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+convertUnder100(n))
		} else {
			parts = append(parts, convertUnder100(n))
		}
	}
	return strings.Join(parts, " ")
}

func convertUnder1000(n int64) string {
	if n < 100 {
		return convertUnder100(n)
	}
	result := ones[n/100] + " hundred"
	if n%100 != 0 {
		result += " " + convertUnder100(n%100)
	}
	return result
}

func convertUnder100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}

// absWords negates n, clamping the minimum int64 which has no positive twin.
func absWords(n int64) int64 {
	if n == -n {
		return 1<<63 - 1
	}
	return -n
}

var ones = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}
