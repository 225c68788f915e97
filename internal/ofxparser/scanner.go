package ofxparser

import (
	"regexp"
	"strings"
)

// OFX 1.x is SGML: leaf tags are often left unclosed, so a value runs from its opening
// tag up to the next '<'. Blocks (aggregates) are always closed.
var (
	accountBlockPattern = regexp.MustCompile(`(?is)<BANKACCTFROM>(.*?)</BANKACCTFROM>`)
	tranListPattern     = regexp.MustCompile(`(?is)<BANKTRANLIST>(.*?)</BANKTRANLIST>`)
	stmtTrnPattern      = regexp.MustCompile(`(?is)<STMTTRN>(.*?)</STMTTRN>`)
)

const (
	tagBankID   = "BANKID"
	tagBranchID = "BRANCHID"
	tagAcctID   = "ACCTID"
	tagAcctType = "ACCTTYPE"
	tagCurDef   = "CURDEF"
	tagDtPosted = "DTPOSTED"
	tagTrnAmt   = "TRNAMT"
	tagMemo     = "MEMO"
	tagName     = "NAME"
	tagFitID    = "FITID"
	tagTrnType  = "TRNTYPE"
	tagCheckNum = "CHECKNUM"
)

// Compiled once; read-only afterwards.
var tagPatterns = compileTagPatterns(
	tagBankID, tagBranchID, tagAcctID, tagAcctType, tagCurDef,
	tagDtPosted, tagTrnAmt, tagMemo, tagName, tagFitID, tagTrnType, tagCheckNum,
)

func compileTagPatterns(tags ...string) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(tags))
	for _, tag := range tags {
		patterns[tag] = regexp.MustCompile(`(?i)<` + tag + `>([^<]*)`)
	}
	return patterns
}

// tagValue returns the trimmed value of the first occurrence of tag in text.
func tagValue(text, tag string) (string, bool) {
	pattern, ok := tagPatterns[tag]
	if !ok {
		pattern = regexp.MustCompile(`(?i)<` + regexp.QuoteMeta(tag) + `>([^<]*)`)
	}
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// block returns the content between an aggregate's opening and closing tags.
func block(text string, pattern *regexp.Regexp) (string, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// blocks returns the content of every occurrence of an aggregate, in document order.
func blocks(text string, pattern *regexp.Regexp) []string {
	matches := pattern.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
