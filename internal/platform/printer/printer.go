// Package printer sends finished label documents to a raw-socket print
// spooler. It knows nothing about the document format; encoding is the
// label package's job.
package printer

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/obradorlabs/obrador-backend/internal/platform/logger"
)

// Service delivers an encoded document to a printer. device selects the
// target ("host:port"); empty means the configured default. Failures are
// returned, never swallowed.
type Service interface {
	Print(ctx context.Context, doc []byte, device string) error
}

type tcpService struct {
	defaultAddr string
	timeout     time.Duration
	log         *logger.Logger
}

// NewTCPService prints over a raw TCP socket (port-9100 style spooler).
func NewTCPService(defaultAddr string, timeout time.Duration, baseLog *logger.Logger) Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &tcpService{
		defaultAddr: defaultAddr,
		timeout:     timeout,
		log:         baseLog.With("service", "PrinterService"),
	}
}

func (s *tcpService) Print(ctx context.Context, doc []byte, device string) error {
	addr := device
	if addr == "" {
		addr = s.defaultAddr
	}
	if addr == "" {
		return fmt.Errorf("no printer address configured")
	}

	dialer := &net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial printer %s: %w", addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	} else {
		_ = conn.SetWriteDeadline(time.Now().Add(s.timeout))
	}

	if _, err := conn.Write(doc); err != nil {
		return fmt.Errorf("write to printer %s: %w", addr, err)
	}
	s.log.Info("label document sent", "printer", addr, "bytes", len(doc))
	return nil
}

// NopService discards documents. Used in environments without a printer.
type NopService struct{}

func (NopService) Print(ctx context.Context, doc []byte, device string) error { return nil }
