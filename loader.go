package equitywise

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/basant-kumar/EquityWise/date"
)

// This file decodes the four input streams from their CSV sources: the
// SBI TTBR reference-rate export, the stock price history export, and
// the vesting and gain/loss statements. Columns are located by header
// name so extra columns and reordered exports keep working.

// header maps lowercased column names to their index.
type header map[string]int

func readHeader(record []string) header {
	h := make(header, len(record))
	for i, name := range record {
		h[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return h
}

// col returns the value of the first matching column, trimmed.
func (h header) col(record []string, names ...string) string {
	for _, name := range names {
		if i, ok := h[name]; ok && i < len(record) {
			return strings.TrimSpace(record[i])
		}
	}
	return ""
}

// parseAmount parses a number that may carry a currency sign, commas,
// or parentheses for negatives, as brokerage exports do.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	if neg {
		s = s[1 : len(s)-1]
	}
	s = strings.NewReplacer("$", "", "₹", "", ",", "", "%", "").Replace(s)
	if s == "" || s == "-" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}

// parseAnyDate accepts the date formats seen across the source files:
// ISO, the US form of brokerage exports, and the SBI "02 Jan 2006"
// form.
func parseAnyDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"01/02/2006", "2 Jan 2006", "02 Jan 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return date.New(t.Date()), nil
		}
	}
	return date.Parse(s)
}

// readRecords reads all CSV records, skipping preamble lines before
// the header row that contains wanted (some exports carry one or two
// title lines above the header).
func readRecords(r io.Reader, wanted string) (header, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	for i, record := range records {
		h := readHeader(record)
		if _, ok := h[wanted]; ok {
			return h, records[i+1:], nil
		}
	}
	return nil, nil, fmt.Errorf("no header row with a %q column", wanted)
}

// DecodeRates reads the USD/INR exchange rate series from an SBI TTBR
// style CSV with Date and Rate columns.
func DecodeRates(r io.Reader) (*Series, error) {
	h, records, err := readRecords(r, "date")
	if err != nil {
		return nil, fmt.Errorf("exchange rate file: %w", err)
	}
	s := NewSeries("exchange rate")
	for i, record := range records {
		on, err := parseAnyDate(h.col(record, "date"))
		if err != nil {
			return nil, fmt.Errorf("exchange rate file line %d: %w", i+2, err)
		}
		rate, err := parseAmount(h.col(record, "rate", "ttbr", "tt buy"))
		if err != nil {
			return nil, fmt.Errorf("exchange rate file line %d: %w", i+2, err)
		}
		if rate == 0 {
			continue
		}
		if err := s.Append(on, rate); err != nil {
			return nil, fmt.Errorf("exchange rate file line %d: %w", i+2, err)
		}
	}
	return s, nil
}

// DecodePrices reads the stock close price series from a CSV with Date
// and Close/Last columns. Dollar signs and thousands separators are
// stripped.
func DecodePrices(r io.Reader) (*Series, error) {
	h, records, err := readRecords(r, "date")
	if err != nil {
		return nil, fmt.Errorf("stock price file: %w", err)
	}
	s := NewSeries("stock price")
	for i, record := range records {
		on, err := parseAnyDate(h.col(record, "date"))
		if err != nil {
			return nil, fmt.Errorf("stock price file line %d: %w", i+2, err)
		}
		close, err := parseAmount(h.col(record, "close/last", "close"))
		if err != nil {
			return nil, fmt.Errorf("stock price file line %d: %w", i+2, err)
		}
		if close == 0 {
			continue
		}
		if err := s.Append(on, close); err != nil {
			return nil, fmt.Errorf("stock price file line %d: %w", i+2, err)
		}
	}
	return s, nil
}

// DecodeVestings reads vesting lots from a CSV with Grant Number, Vest
// Date, Quantity, FMV (USD), Forex Rate, and Total (INR) columns.
func DecodeVestings(r io.Reader) ([]VestingLot, error) {
	h, records, err := readRecords(r, "grant number")
	if err != nil {
		return nil, fmt.Errorf("vesting file: %w", err)
	}
	var lots []VestingLot
	for i, record := range records {
		grant := h.col(record, "grant number")
		if grant == "" {
			continue
		}
		on, err := parseAnyDate(h.col(record, "vest date", "date"))
		if err != nil {
			return nil, fmt.Errorf("vesting file line %d: %w", i+2, err)
		}
		quantity, err := parseAmount(h.col(record, "quantity", "vested qty."))
		if err != nil {
			return nil, fmt.Errorf("vesting file line %d: %w", i+2, err)
		}
		fmv, err := parseAmount(h.col(record, "fmv (usd)", "vest date fmv", "fmv"))
		if err != nil {
			return nil, fmt.Errorf("vesting file line %d: %w", i+2, err)
		}
		rate, err := parseAmount(h.col(record, "forex rate", "exchange rate"))
		if err != nil {
			return nil, fmt.Errorf("vesting file line %d: %w", i+2, err)
		}
		totalINR, err := parseAmount(h.col(record, "total (inr)", "total inr"))
		if err != nil {
			return nil, fmt.Errorf("vesting file line %d: %w", i+2, err)
		}
		lot, err := NewVestingLot(grant, on, int(quantity), fmv, rate, totalINR)
		if err != nil {
			return nil, fmt.Errorf("vesting file line %d: %w", i+2, err)
		}
		lots = append(lots, lot)
	}
	return lots, nil
}

// DecodeDisposals reads disposal lots from a gain/loss statement CSV.
// When a Record Type column exists only "Sell" rows are taken; rows
// without a sale date or with a zero quantity are skipped.
func DecodeDisposals(r io.Reader) ([]DisposalLot, error) {
	h, records, err := readRecords(r, "grant number")
	if err != nil {
		return nil, fmt.Errorf("gain/loss file: %w", err)
	}
	var lots []DisposalLot
	for i, record := range records {
		if t := h.col(record, "record type"); t != "" && !strings.EqualFold(t, "sell") {
			continue
		}
		grant := h.col(record, "grant number")
		soldStr := h.col(record, "date sold")
		if grant == "" || soldStr == "" {
			continue
		}
		sold, err := parseAnyDate(soldStr)
		if err != nil {
			return nil, fmt.Errorf("gain/loss file line %d: %w", i+2, err)
		}
		acquired, err := parseAnyDate(h.col(record, "date acquired"))
		if err != nil {
			return nil, fmt.Errorf("gain/loss file line %d: %w", i+2, err)
		}
		quantity, err := parseAmount(h.col(record, "quantity", "qty."))
		if err != nil {
			return nil, fmt.Errorf("gain/loss file line %d: %w", i+2, err)
		}
		if quantity == 0 {
			continue
		}
		perShare, err := parseAmount(h.col(record, "proceeds per share"))
		if err != nil {
			return nil, fmt.Errorf("gain/loss file line %d: %w", i+2, err)
		}
		proceeds, err := parseAmount(h.col(record, "total proceeds", "proceeds"))
		if err != nil {
			return nil, fmt.Errorf("gain/loss file line %d: %w", i+2, err)
		}
		costBasis, err := parseAmount(h.col(record, "adjusted cost basis", "cost basis"))
		if err != nil {
			return nil, fmt.Errorf("gain/loss file line %d: %w", i+2, err)
		}
		gainLoss, err := parseAmount(h.col(record, "adjusted gain/loss", "gain/loss"))
		if err != nil {
			return nil, fmt.Errorf("gain/loss file line %d: %w", i+2, err)
		}
		lot, err := NewDisposalLot(grant, acquired, sold, quantity, perShare, proceeds, costBasis, gainLoss, h.col(record, "order number"))
		if err != nil {
			return nil, fmt.Errorf("gain/loss file line %d: %w", i+2, err)
		}
		lots = append(lots, lot)
	}
	return lots, nil
}

// LoadRates reads an exchange rate CSV file.
func LoadRates(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeRates(f)
}

// LoadPrices reads a stock price CSV file.
func LoadPrices(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodePrices(f)
}

// LoadVestings reads a vesting statement CSV or JSONL file.
func LoadVestings(path string) ([]VestingLot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.HasSuffix(path, ".jsonl") {
		return DecodeVestingsJSONL(f)
	}
	return DecodeVestings(f)
}

// LoadDisposals reads a gain/loss statement CSV or JSONL file.
func LoadDisposals(path string) ([]DisposalLot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.HasSuffix(path, ".jsonl") {
		return DecodeDisposalsJSONL(f)
	}
	return DecodeDisposals(f)
}
