// Package csvparser reads the comma-separated statements exported by Brazilian banks
// (Data, Valor, Identificador, Descrição) into preview transactions.
package csvparser

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"fjacquet/livro-caixa/internal/classifier"
	"fjacquet/livro-caixa/internal/currencyutils"
	"fjacquet/livro-caixa/internal/dateutils"
	"fjacquet/livro-caixa/internal/logging"
	"fjacquet/livro-caixa/internal/models"
	"fjacquet/livro-caixa/internal/parser"
	"fjacquet/livro-caixa/internal/parsererror"
	"fjacquet/livro-caixa/internal/textutils"
)

const parserName = "csv"

var lineBreak = regexp.MustCompile(`\r?\n`)

// Parser implements parser.Parser for CSV statements.
type Parser struct {
	parser.BaseParser
	encoding string
}

// New creates a CSV parser. An empty encoding means Latin-1.
func New(logger logging.Logger, cls *classifier.Classifier, options parser.Options, encoding string) (*Parser, error) {
	enc, err := ParseEncoding(encoding)
	if err != nil {
		return nil, err
	}
	return &Parser{
		BaseParser: parser.NewBaseParser(parserName, parsererror.CategoryMalformedCSV, logger, cls, options),
		encoding:   enc,
	}, nil
}

// columns holds the header positions of the four required columns.
type columns struct {
	date, amount, reference, description int
}

// Parse converts the upload into a ParsedExtract with one transaction per data row.
func (p *Parser) Parse(upload models.Upload) (*models.ParsedExtract, error) {
	logger := p.GetLogger()
	logger.Info("Parsing CSV statement",
		logging.F(logging.FieldFile, upload.Filename),
		logging.F(logging.FieldSize, len(upload.Content)),
		logging.F(logging.FieldEncoding, p.encoding))

	text, err := decode(upload.Content, p.encoding)
	if err != nil {
		return nil, p.Fail(upload.Filename, err.Error(), err)
	}

	lines := splitLines(text)
	if len(lines) < 2 {
		return nil, p.Fail(upload.Filename, "insufficient content", parsererror.ErrInsufficientContent)
	}

	cols, missing := mapHeader(splitRecord(lines[0]))
	if len(missing) > 0 {
		return nil, p.Fail(upload.Filename,
			fmt.Sprintf("invalid header: missing %s", strings.Join(missing, ", ")),
			parsererror.ErrInvalidHeader)
	}

	transactions := make([]models.ParsedTransaction, 0, len(lines)-1)
	skipped := 0
	for i, line := range lines[1:] {
		row := p.readRow(i+2, splitRecord(line), cols)
		tx, keep, err := p.BuildTransaction(upload.Filename, row)
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

	logger.Info("Parsed CSV statement",
		logging.F(logging.FieldFile, upload.Filename),
		logging.F(logging.FieldCount, len(transactions)))

	return &models.ParsedExtract{
		Filename:     upload.Filename,
		Format:       models.FormatCSV,
		Currency:     p.Options().DefaultCurrency,
		Transactions: transactions,
	}, nil
}

func (p *Parser) readRow(lineNumber int, cells []string, cols columns) parser.Row {
	rawDate := cell(cells, cols.date)
	rawAmount := cell(cells, cols.amount)
	rawDescription := cell(cells, cols.description)
	reference := cell(cells, cols.reference)

	row := parser.Row{
		Position:    lineNumber,
		RawDate:     rawDate,
		RawAmount:   rawAmount,
		Description: textutils.NormalizeWhitespace(rawDescription),
		Reference:   reference,
		Raw: map[string]string{
			"line":        strconv.Itoa(lineNumber),
			"date":        rawDate,
			"amount":      rawAmount,
			"description": rawDescription,
			"reference":   reference,
		},
	}
	row.Date, row.DateErr = dateutils.ParseBrazilianDate(rawDate)
	row.Amount, row.AmountErr = currencyutils.NormalizeAmount(rawAmount)
	return row
}

// splitLines splits on \r?\n, trims every line and drops blank ones.
func splitLines(text string) []string {
	var lines []string
	for _, line := range lineBreak.Split(text, -1) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitRecord splits one line into trimmed cells. Quoted cells such as "1.234,56" stay
// whole; a line the CSV reader rejects falls back to a plain comma split.
func splitRecord(line string) []string {
	reader := csv.NewReader(strings.NewReader(line))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	record, err := reader.Read()
	if err != nil {
		record = strings.Split(line, ",")
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}
	return record
}

// mapHeader locates the required columns, returning the names of those it could not find.
func mapHeader(header []string) (columns, []string) {
	cols := columns{date: -1, amount: -1, reference: -1, description: -1}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		switch {
		case name == "data" && cols.date < 0:
			cols.date = i
		case name == "valor" && cols.amount < 0:
			cols.amount = i
		case name == "identificador" && cols.reference < 0:
			cols.reference = i
		case strings.HasPrefix(name, "descri") && cols.description < 0:
			cols.description = i
		}
	}

	var missing []string
	if cols.date < 0 {
		missing = append(missing, "data")
	}
	if cols.amount < 0 {
		missing = append(missing, "valor")
	}
	if cols.reference < 0 {
		missing = append(missing, "identificador")
	}
	if cols.description < 0 {
		missing = append(missing, "descrição")
	}
	return cols, missing
}

func cell(cells []string, index int) string {
	if index < 0 || index >= len(cells) {
		return ""
	}
	return cells[index]
}
