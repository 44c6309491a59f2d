// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "strings"

var gmailDomains = map[string]struct{}{
	"gmail.com":      {},
	"googlemail.com": {},
}

var icloudDomains = map[string]struct{}{
	"icloud.com": {},
	"me.com":     {},
}

var yahooDomains = map[string]struct{}{
	"rocketmail.com": {},
	"yahoo.ca":       {},
	"yahoo.co.uk":    {},
	"yahoo.com":      {},
	"yahoo.de":       {},
	"yahoo.fr":       {},
	"yahoo.in":       {},
	"yahoo.it":       {},
	"ymail.com":      {},
}

// Outlook.com runs on many country domains (hotmail.de, live.ru, outlook.jp ...),
// so these are matched by their first label.
var outlookPrefixes = []string{"hotmail.", "live.", "outlook."}

// NormalizeEmail canonicalises an e-mail address before it is stored or
// looked up: surrounding spaces are trimmed and the address is lowercased.
// Provider subaddresses are removed: "+tag" for Gmail, Outlook.com and iCloud,
// the last "-tag" for Yahoo. googlemail.com becomes gmail.com. Dots in the
// local part are kept.
//
// Strings without exactly one "@" are returned trimmed and lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	switch {
	case isGmail(domain):
		local = cutAtFirst(local, '+')
		domain = "gmail.com"
	case isICloud(domain), isOutlook(domain):
		local = cutAtFirst(local, '+')
	case isYahoo(domain):
		if i := strings.LastIndexByte(local, '-'); i > 0 {
			local = local[:i]
		}
	}

	return local + "@" + domain
}

func cutAtFirst(local string, sep byte) string {
	if i := strings.IndexByte(local, sep); i > 0 {
		return local[:i]
	}
	return local
}

func isGmail(domain string) bool {
	_, ok := gmailDomains[domain]
	return ok
}

func isICloud(domain string) bool {
	_, ok := icloudDomains[domain]
	return ok
}

func isYahoo(domain string) bool {
	_, ok := yahooDomains[domain]
	return ok
}

func isOutlook(domain string) bool {
	if domain == "msn.com" {
		return true
	}
	for _, prefix := range outlookPrefixes {
		if strings.HasPrefix(domain, prefix) {
			return true
		}
	}
	return false
}
