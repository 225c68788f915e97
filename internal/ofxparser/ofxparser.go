// Package ofxparser reads OFX 1.x (SGML) and 2.x (XML) bank statements with a tolerant tag
// scan rather than a full document parser, so fragments and unclosed leaf tags are accepted.
package ofxparser

import (
	"fmt"
	"unicode/utf8"

	"fjacquet/livro-caixa/internal/classifier"
	"fjacquet/livro-caixa/internal/currencyutils"
	"fjacquet/livro-caixa/internal/dateutils"
	"fjacquet/livro-caixa/internal/logging"
	"fjacquet/livro-caixa/internal/models"
	"fjacquet/livro-caixa/internal/parser"
	"fjacquet/livro-caixa/internal/parsererror"
	"fjacquet/livro-caixa/internal/textutils"

	"golang.org/x/text/encoding/charmap"
)

const parserName = "ofx"

// Parser implements parser.Parser for OFX statements.
type Parser struct {
	parser.BaseParser
}

// New creates an OFX parser.
func New(logger logging.Logger, cls *classifier.Classifier, options parser.Options) *Parser {
	return &Parser{
		BaseParser: parser.NewBaseParser(parserName, parsererror.CategoryMalformedOFX, logger, cls, options),
	}
}

// Parse converts the upload into a ParsedExtract with one transaction per STMTTRN block.
func (p *Parser) Parse(upload models.Upload) (*models.ParsedExtract, error) {
	logger := p.GetLogger()
	logger.Info("Parsing OFX statement",
		logging.F(logging.FieldFile, upload.Filename),
		logging.F(logging.FieldSize, len(upload.Content)))

	text, err := decode(upload.Content)
	if err != nil {
		return nil, p.Fail(upload.Filename, err.Error(), err)
	}

	tranList, ok := block(text, tranListPattern)
	if !ok {
		return nil, p.Fail(upload.Filename, "transactions not found", parsererror.ErrTransactionsNotFound)
	}

	currency := p.Options().DefaultCurrency
	if curDef, ok := tagValue(text, tagCurDef); ok && curDef != "" {
		currency = curDef
	}

	trnBlocks := blocks(tranList, stmtTrnPattern)
	if len(trnBlocks) == 0 {
		return nil, p.Fail(upload.Filename, "no transactions found in OFX file", parsererror.ErrNoTransactions)
	}

	transactions := make([]models.ParsedTransaction, 0, len(trnBlocks))
	skipped := 0
	for i, trn := range trnBlocks {
		tx, keep, err := p.BuildTransaction(upload.Filename, readTransaction(i+1, trn))
		if err != nil {
			return nil, err
		}
		if !keep {
			skipped++
			continue
		}
		transactions = append(transactions, tx)
	}

	if err := p.Finish(upload.Filename, transactions, skipped); err != nil {
		return nil, err
	}

	logger.Info("Parsed OFX statement",
		logging.F(logging.FieldFile, upload.Filename),
		logging.F(logging.FieldCount, len(transactions)))

	return &models.ParsedExtract{
		Filename:     upload.Filename,
		Format:       models.FormatOFX,
		Currency:     currency,
		Account:      readAccount(text),
		Transactions: transactions,
	}, nil
}

// readAccount returns nil when the statement has no BANKACCTFROM aggregate.
func readAccount(text string) *models.Account {
	acct, ok := block(text, accountBlockPattern)
	if !ok {
		return nil
	}
	account := &models.Account{}
	account.BankID, _ = tagValue(acct, tagBankID)
	account.BranchID, _ = tagValue(acct, tagBranchID)
	account.AccountID, _ = tagValue(acct, tagAcctID)
	account.Type, _ = tagValue(acct, tagAcctType)
	return account
}

func readTransaction(index int, trn string) parser.Row {
	dtPosted, _ := tagValue(trn, tagDtPosted)
	trnAmt, ok := tagValue(trn, tagTrnAmt)
	if !ok {
		trnAmt = "0"
	}
	memo, _ := tagValue(trn, tagMemo)
	memo = textutils.NormalizeWhitespace(memo)
	fitID, _ := tagValue(trn, tagFitID)
	trnType, _ := tagValue(trn, tagTrnType)

	row := parser.Row{
		Position:    index,
		RawDate:     dtPosted,
		RawAmount:   trnAmt,
		Description: memo,
		Reference:   fitID,
		Raw: map[string]string{
			"dtposted": dtPosted,
			"trnamt":   trnAmt,
			"memo":     memo,
			"fitid":    fitID,
			"trntype":  trnType,
		},
	}
	if name, ok := tagValue(trn, tagName); ok && name != "" {
		row.Raw["name"] = textutils.NormalizeWhitespace(name)
	}
	if checkNum, ok := tagValue(trn, tagCheckNum); ok && checkNum != "" {
		row.Raw["checknum"] = checkNum
	}

	row.Date, row.DateErr = dateutils.ParseOFXDate(dtPosted)
	row.Amount, row.AmountErr = currencyutils.NormalizeAmount(trnAmt)
	return row
}

// decode reads the statement as UTF-8. Many Brazilian banks still emit CHARSET:1252 files,
// so content that is not valid UTF-8 is read as Windows-1252.
func decode(content []byte) (string, error) {
	if utf8.Valid(content) {
		return string(content), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(content)
	if err != nil {
		return "", fmt.Errorf("failed to decode Windows-1252 content: %w", err)
	}
	return string(decoded), nil
}

