package decant

import (
	"regexp"
	"strings"
)

// Entities is the bundle of structured data detected in extracted text.
// A kind is present only when at least one match was found; an absent kind
// means "none detected", not "not attempted".
type Entities struct {
	Emails []string `json:"emails,omitempty"`
	Prices []string `json:"prices,omitempty"`
	Phones []string `json:"phones,omitempty"`
	Dates  []string `json:"dates,omitempty"`
}

// IsEmpty reports whether no entities of any kind were detected.
func (e *Entities) IsEmpty() bool {
	return e == nil ||
		(len(e.Emails) == 0 && len(e.Prices) == 0 && len(e.Phones) == 0 && len(e.Dates) == 0)
}

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Obfuscated emails: "user [at] domain [dot] com" and (at)/(dot) variants.
	emailObfuscatedRe = regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+\s*[\[(]\s*at\s*[\])]\s*[A-Za-z0-9.-]+\s*[\[(]\s*dot\s*[\])]\s*[A-Za-z]{2,}\b`)
	obfuscatedAtRe    = regexp.MustCompile(`(?i)\s*[\[(]\s*at\s*[\])]\s*`)
	obfuscatedDotRe   = regexp.MustCompile(`(?i)\s*[\[(]\s*dot\s*[\])]\s*`)

	// Symbol-prefixed amounts plus currency-code-suffixed amounts.
	priceRe = regexp.MustCompile(`(?i)(?:[$€£¥₹]|R\$|CA?\$|AU?\$)\s?\d{1,3}(?:[,.\s]\d{3})*(?:[.,]\d{1,2})?\b|\b\d{1,3}(?:[,.\s]\d{3})*(?:[.,]\d{1,2})?\s?(?:USD|EUR|GBP|JPY|CAD|AUD|CHF|INR|BRL)\b`)

	phoneRe    = regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{2,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}\b`)
	nonDigitRe = regexp.MustCompile(`\D`)

	dateISORe = regexp.MustCompile(`\b\d{4}-(?:0[1-9]|1[0-2])-(?:0[1-9]|[12]\d|3[01])\b`)
	dateUSRe  = regexp.MustCompile(`\b(?:0?[1-9]|1[0-2])/(?:0?[1-9]|[12]\d|3[01])/(?:19|20)\d{2}\b`)
	dateEURe  = regexp.MustCompile(`\b(?:0?[1-9]|[12]\d|3[01])/(?:0?[1-9]|1[0-2])/(?:19|20)\d{2}\b`)

	dateWrittenRe   = regexp.MustCompile(`(?i)\b(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\s+\d{1,2},?\s+\d{4}\b`)
	dateEUWrittenRe = regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+\d{4}\b`)
)

// DetectEntities scans plain text for emails, prices, phone numbers, and
// dates. Matches are deduplicated preserving first-occurrence order. Returns
// nil when the text is empty or nothing was detected.
func DetectEntities(text string) *Entities {
	if text == "" {
		return nil
	}

	e := &Entities{
		Emails: matchEmails(text),
		Prices: matchPrices(text),
		Phones: matchPhones(text),
		Dates:  matchDates(text),
	}
	if e.IsEmpty() {
		return nil
	}
	return e
}

func matchEmails(text string) []string {
	var emails []string
	for _, m := range matchAll(emailRe, text) {
		// Alt-text and URL proximity produce matches like logo@2x.png.
		if strings.HasSuffix(m, ".png") || strings.HasSuffix(m, ".jpg") || strings.HasSuffix(m, ".svg") {
			continue
		}
		emails = append(emails, m)
	}
	for _, m := range matchAll(emailObfuscatedRe, text) {
		m = obfuscatedAtRe.ReplaceAllString(m, "@")
		m = obfuscatedDotRe.ReplaceAllString(m, ".")
		emails = append(emails, strings.TrimSpace(strings.ToLower(m)))
	}
	return dedupe(emails)
}

func matchPrices(text string) []string {
	return dedupe(matchAll(priceRe, text))
}

func matchPhones(text string) []string {
	var phones []string
	for _, m := range matchAll(phoneRe, text) {
		// Short numeric sequences like version numbers are not phone
		// numbers; require an E.164-plausible digit count.
		digits := len(nonDigitRe.ReplaceAllString(m, ""))
		if digits < 7 || digits > 15 {
			continue
		}
		phones = append(phones, m)
	}
	return dedupe(phones)
}

// matchDates runs the ISO, US, EU, written, and EU-written patterns
// independently. Ambiguous slash dates match both the US and EU patterns;
// no locale disambiguation is attempted.
func matchDates(text string) []string {
	var dates []string
	dates = append(dates, matchAll(dateISORe, text)...)
	dates = append(dates, matchAll(dateUSRe, text)...)
	dates = append(dates, matchAll(dateEURe, text)...)
	dates = append(dates, matchAll(dateWrittenRe, text)...)
	dates = append(dates, matchAll(dateEUWrittenRe, text)...)
	return dedupe(dates)
}

func matchAll(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)
	for i, m := range matches {
		matches[i] = strings.TrimSpace(m)
	}
	return matches
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
