package equitywise

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// This file handles the canonical storage format for lots: JSONL, one
// lot per line. It is human readable, git friendly, and easy to merge,
// which suits statements that arrive as yearly exports.

// EncodeVestingsJSONL writes vesting lots to w, one JSON object per
// line.
func EncodeVestingsJSONL(w io.Writer, lots []VestingLot) error {
	enc := json.NewEncoder(w)
	for _, lot := range lots {
		if err := enc.Encode(lot); err != nil {
			return fmt.Errorf("cannot encode vesting lot %s on %s: %w", lot.Grant, lot.VestDate, err)
		}
	}
	return nil
}

// DecodeVestingsJSONL reads vesting lots from a JSONL stream. Each lot
// passes through the same validation as the CSV path.
func DecodeVestingsJSONL(r io.Reader) ([]VestingLot, error) {
	// the readable version of the format is a few plain fields.
	type jvesting struct {
		Grant     string  `json:"grant"`
		Vested    string  `json:"vested"`
		Quantity  int     `json:"quantity"`
		FMVUSD    float64 `json:"fmv_usd"`
		ForexRate float64 `json:"forex_rate"`
		TotalINR  float64 `json:"total_inr"`
	}

	var lots []VestingLot
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jv jvesting
		if err := json.Unmarshal(line, &jv); err != nil {
			return nil, fmt.Errorf("cannot parse vesting lot line %q: %w", string(line), err)
		}
		on, err := ParseDate(jv.Vested)
		if err != nil {
			return nil, fmt.Errorf("cannot parse vesting lot line %q: %w", string(line), err)
		}
		lot, err := NewVestingLot(jv.Grant, on, jv.Quantity, jv.FMVUSD, jv.ForexRate, jv.TotalINR)
		if err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}
	return lots, scanner.Err()
}

// EncodeDisposalsJSONL writes disposal lots to w, one JSON object per
// line.
func EncodeDisposalsJSONL(w io.Writer, lots []DisposalLot) error {
	enc := json.NewEncoder(w)
	for _, lot := range lots {
		if err := enc.Encode(lot); err != nil {
			return fmt.Errorf("cannot encode disposal lot %s sold %s: %w", lot.Grant, lot.Sold, err)
		}
	}
	return nil
}

// DecodeDisposalsJSONL reads disposal lots from a JSONL stream.
func DecodeDisposalsJSONL(r io.Reader) ([]DisposalLot, error) {
	type jdisposal struct {
		Grant            string  `json:"grant"`
		Acquired         string  `json:"acquired"`
		Sold             string  `json:"sold"`
		Quantity         float64 `json:"quantity"`
		ProceedsPerShare float64 `json:"proceeds_per_share"`
		TotalProceeds    float64 `json:"total_proceeds"`
		CostBasisUSD     float64 `json:"cost_basis_usd"`
		GainLossUSD      float64 `json:"gain_loss_usd"`
		OrderRef         string  `json:"order_ref"`
	}

	var lots []DisposalLot
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jd jdisposal
		if err := json.Unmarshal(line, &jd); err != nil {
			return nil, fmt.Errorf("cannot parse disposal lot line %q: %w", string(line), err)
		}
		acquired, err := ParseDate(jd.Acquired)
		if err != nil {
			return nil, fmt.Errorf("cannot parse disposal lot line %q: %w", string(line), err)
		}
		sold, err := ParseDate(jd.Sold)
		if err != nil {
			return nil, fmt.Errorf("cannot parse disposal lot line %q: %w", string(line), err)
		}
		lot, err := NewDisposalLot(jd.Grant, acquired, sold, jd.Quantity, jd.ProceedsPerShare, jd.TotalProceeds, jd.CostBasisUSD, jd.GainLossUSD, jd.OrderRef)
		if err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}
	return lots, scanner.Err()
}
