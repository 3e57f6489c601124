// Package report renders a resolved payment lineage as the ten-line text
// artifact and writes it to disk.
package report

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/neverDefined/go-regtest-lineage/internal/lineage"
	"github.com/neverDefined/go-regtest-lineage/internal/pkg/logger"
)

// DefaultPath is where the workflow writes its report, relative to the
// working directory.
const DefaultPath = "../out.txt"

// Lines is the number of lines in a report.
const Lines = 10

// Writer persists lineage reports.
type Writer interface {
	// Write replaces whatever is at path with the rendered report.
	Write(ctx context.Context, r lineage.Report, path string) error
}

type service struct{}

// Compile-time check to ensure *service implements the Writer interface.
var _ Writer = (*service)(nil)

// New creates a file Writer.
func New() *service {
	return &service{}
}

func (s *service) Write(ctx context.Context, r lineage.Report, path string) error {
	if path == "" {
		path = DefaultPath
	}

	if err := os.WriteFile(path, Format(r), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logger.Info(ctx, "report written", "path", path, "txid", r.TxID.String())

	return nil
}

// Format renders r as ten newline-terminated lines: txid, funding address,
// funding amount, payment address, payment amount, change address, change
// amount, fee, block height and block hash.
func Format(r lineage.Report) []byte {
	lines := [Lines]string{
		r.TxID.String(),
		r.FundingAddress,
		FormatAmount(r.FundingAmount),
		r.PaymentAddress,
		FormatAmount(r.PaymentAmount),
		r.ChangeAddress,
		FormatAmount(r.ChangeAmount),
		FormatFee(r.Fee),
		strconv.FormatInt(r.BlockHeight, 10),
		r.BlockHash.String(),
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return []byte(b.String())
}

// FormatAmount renders a satoshi amount as the shortest decimal number of
// bitcoin, e.g. "50", "20" or "29.9999859".
func FormatAmount(a btcutil.Amount) string {
	sat := int64(a)

	sign := ""
	if sat < 0 {
		sign = "-"
		sat = -sat
	}

	whole := sat / btcutil.SatoshiPerBitcoin
	frac := sat % btcutil.SatoshiPerBitcoin
	if frac == 0 {
		return sign + strconv.FormatInt(whole, 10)
	}

	digits := strings.TrimRight(fmt.Sprintf("%08d", frac), "0")

	return sign + strconv.FormatInt(whole, 10) + "." + digits
}

// FormatFee renders a fee in bitcoin in scientific notation with two digits
// after the decimal point and a bare exponent, e.g. "-1.41e-5".
func FormatFee(fee btcutil.Amount) string {
	if fee == 0 {
		return "0.00e0"
	}

	s := strconv.FormatFloat(fee.ToBTC(), 'e', 2, 64)

	mantissa, exp, _ := strings.Cut(s, "e")
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}

	return mantissa + "e" + strconv.Itoa(n)
}
