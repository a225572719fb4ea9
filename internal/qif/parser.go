// Package qif parses QIF bank-export files into transaction drafts.
package qif

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned to records whose QIF data carries no category.
const DefaultCategory = "Uncategorized"

// Transaction is a parsed QIF record before persistence. Exactly one of
// Debit/Credit is non-zero; both are never negative.
type Transaction struct {
	Date                time.Time
	Description         string
	Category            string
	SubCategory         string
	Debit               decimal.Decimal
	Credit              decimal.Decimal
	LinkedTransactionID *uuid.UUID
}

// Parser converts raw QIF text into transaction drafts. The zero value is
// not usable; construct with NewParser.
type Parser struct {
	now func() time.Time
}

// NewParser creates a Parser that uses the wall clock for date fallbacks.
func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// NewParserAt creates a Parser with a fixed clock.
func NewParserAt(now func() time.Time) *Parser {
	return &Parser{now: now}
}

// record accumulates field lines until a terminator.
type record struct {
	date        time.Time
	hasDate     bool
	description string
	category    string
	subCategory string
	debit       decimal.Decimal
	credit      decimal.Decimal
}

// Parse scans QIF content line by line and returns the complete records in
// file order. Incomplete records (missing date or description at their
// terminator) are dropped, never reported; malformed content can only yield
// an empty result, not an error.
func (p *Parser) Parse(content string) []Transaction {
	var (
		transactions []Transaction
		current      record
	)

	for _, rawLine := range strings.Split(content, "\n") {
		line := strings.TrimSpace(rawLine)

		switch {
		case strings.HasPrefix(line, "!Type:"):
			// A type header starts a fresh record group. Anything
			// accumulated so far is discarded without emitting.
			current = record{}
		case strings.HasPrefix(line, "^"):
			if tx, ok := current.emit(); ok {
				transactions = append(transactions, tx)
			}
			current = record{}
		default:
			p.applyField(&current, line)
		}
	}

	// Files missing a trailing ^ still emit their last record.
	if tx, ok := current.emit(); ok {
		transactions = append(transactions, tx)
	}

	return transactions
}

// ParseReader reads the full payload and parses it. The returned error covers
// the byte-reading boundary only; content problems never error.
func (p *Parser) ParseReader(r io.Reader) ([]Transaction, error) {
	buf := bufio.NewReader(r)
	content, err := io.ReadAll(buf)
	if err != nil {
		return nil, err
	}
	return p.Parse(string(content)), nil
}

func (p *Parser) applyField(current *record, line string) {
	if line == "" {
		return
	}
	value := line[1:]

	switch line[0] {
	case 'D':
		current.date = NormalizeDate(value, p.now())
		current.hasDate = true
	case 'T':
		amount, ok := parseAmount(value)
		if !ok {
			return
		}
		if amount.IsPositive() {
			current.credit = amount
			current.debit = decimal.Zero
		} else {
			current.debit = amount.Abs()
			current.credit = decimal.Zero
		}
	case 'P':
		current.description = value
	case 'L':
		current.category = value
	case 'S':
		current.subCategory = value
	case 'M':
		// Memo is a fallback description; a payee line takes precedence.
		if current.description == "" {
			current.description = value
		}
	}
}

// parseAmount strips everything but digits, dot, and minus before parsing,
// matching the tolerance bank exports need (currency symbols, thousands
// separators).
func parseAmount(s string) (decimal.Decimal, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// emit returns the accumulated record as a Transaction when it has both a
// date and a description, applying emission defaults.
func (r *record) emit() (Transaction, bool) {
	if !r.hasDate || r.description == "" {
		return Transaction{}, false
	}

	category := r.category
	if category == "" {
		category = DefaultCategory
	}

	return Transaction{
		Date:        r.date,
		Description: r.description,
		Category:    category,
		SubCategory: r.subCategory,
		Debit:       r.debit,
		Credit:      r.credit,
	}, true
}
