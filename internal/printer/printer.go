package printer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/kula-app/rangeprint/internal/config"
)

// cancelCheckInterval is how many numbers are written between context checks
const cancelCheckInterval = 4096

// Printer reads an upper bound and prints the range 1..n
type Printer struct {
	logger *slog.Logger
	config *config.Config
}

// NewPrinter creates a new printer
func NewPrinter(logger *slog.Logger, cfg *config.Config) *Printer {
	return &Printer{
		logger: logger,
		config: cfg,
	}
}

// Run writes the prompt to out, reads the bound from in and writes the range to out.
// When the bound cannot be read, nothing but the prompt is written.
func (p *Printer) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if p.config.Prompt != "" {
		if _, err := io.WriteString(out, p.config.Prompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}
	}

	n, err := ReadBound(in, p.config.BitSize)
	if err != nil {
		return err
	}
	p.logger.Debug("bound read", "n", n)

	if err := p.writeRange(ctx, out, n); err != nil {
		return err
	}

	p.logger.Debug("range written", "count", max(n, 0))
	return nil
}

// ReadBound reads one whitespace-delimited token from r and parses it as a
// signed base-10 integer that fits in bitSize bits
func ReadBound(r io.Reader, bitSize int) (int64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			// A token longer than the scanner buffer cannot be an integer of any supported size
			if errors.Is(err, bufio.ErrTooLong) {
				return 0, fmt.Errorf("%w: %w", ErrInputFormat, err)
			}
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		return 0, ErrEndOfInput
	}

	token := scanner.Text()
	n, err := strconv.ParseInt(token, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInputFormat, token, err)
	}
	return n, nil
}

// WriteRange writes "1 2 ... n " followed by a newline to w.
// For n < 1 only the newline is written.
func WriteRange(w io.Writer, n int64) error {
	p := &Printer{config: config.DefaultConfig()}
	return p.writeRange(context.Background(), w, n)
}

func (p *Printer) writeRange(ctx context.Context, w io.Writer, n int64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)

	for i := int64(1); i <= n; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				// Keep what was already produced
				_ = bw.Flush()
				return fmt.Errorf("range output interrupted at %d: %w", i, err)
			}
		}

		buf = strconv.AppendInt(buf[:0], i, 10)
		buf = append(buf, p.config.Separator...)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("failed to write range: %w", err)
		}

		// Guard against overflow when n is the largest representable value
		if i == n {
			break
		}
	}

	if _, err := bw.WriteString(p.config.Terminator); err != nil {
		return fmt.Errorf("failed to write range: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush range: %w", err)
	}
	return nil
}
