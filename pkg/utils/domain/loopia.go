package domain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kolo/xmlrpc"
	"github.com/rs/zerolog/log"

	"github.com/vit0-9/namegen_api/pkg/utils"
)

const (
	SourceLoopia          = "loopia"
	DefaultLoopiaEndpoint = "https://api.loopia.se/RPCSERV"
)

var (
	ErrLoopiaAuth        = errors.New("loopia: authentication failed")
	ErrLoopiaRateLimited = errors.New("loopia: rate limited")
)

// LoopiaChecker asks the Loopia registrar API whether a domain is free.
type LoopiaChecker struct {
	username string
	password string
	timeout  time.Duration
	rpc      *xmlrpc.Client
}

type LoopiaConfig struct {
	Username string
	Password string
	// Endpoint defaults to DefaultLoopiaEndpoint.
	Endpoint string
	Timeout  time.Duration
}

func NewLoopiaChecker(cfg LoopiaConfig) (*LoopiaChecker, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrLoopiaAuth)
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultLoopiaEndpoint
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = utils.DefaultOutboundTimeout
	}

	// xmlrpc builds its own http.Client around the transport, so the
	// client-level timeout is lost and the transport has to carry one.
	transport := utils.NewHTTPClient(timeout).Transport.(*http.Transport)
	transport.ResponseHeaderTimeout = timeout

	client, err := xmlrpc.NewClient(endpoint, transport)
	if err != nil {
		return nil, fmt.Errorf("failed to create loopia client: %w", err)
	}
	return &LoopiaChecker{
		username: cfg.Username,
		password: cfg.Password,
		timeout:  timeout,
		rpc:      client,
	}, nil
}

func (c *LoopiaChecker) CheckAvailability(ctx context.Context, domain string) (Availability, error) {
	name, err := NormalizeDomain(domain)
	if err != nil {
		return Availability{}, &AvailabilityError{Domain: domain, Source: SourceLoopia, Err: err}
	}

	start := time.Now()
	reply, err := c.call(ctx, "domainIsFree", name)
	logger := log.With().
		Str("domain", name).
		Str("operation", "domain_is_free").
		Dur("duration_ms", time.Since(start)).
		Logger()
	if err != nil {
		logger.Error().Err(err).Msg("Loopia API call failed")
		return Availability{}, &AvailabilityError{Domain: name, Source: SourceLoopia, Err: err}
	}

	status, _ := reply.(string)
	logger.Debug().Str("status", status).Msg("Loopia API call successful")

	switch strings.ToUpper(status) {
	case "OK":
		return Availability{Available: true, Source: SourceLoopia}, nil
	case "DOMAIN_OCCUPIED":
		return Availability{Available: false, Source: SourceLoopia}, nil
	case "AUTH_ERROR":
		err = ErrLoopiaAuth
	case "RATE_LIMITED":
		err = ErrLoopiaRateLimited
	default:
		err = fmt.Errorf("unexpected domainIsFree response: %v", reply)
	}
	return Availability{}, &AvailabilityError{Domain: name, Source: SourceLoopia, Err: err}
}

// call invokes an XML-RPC method with the credentials prepended. The
// xmlrpc codec sends the HTTP request inside rpc.Client.Go, so the call runs
// on its own goroutine and is abandoned once ctx or the timeout expires.
func (c *LoopiaChecker) call(ctx context.Context, method string, params ...interface{}) (interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	all := append([]interface{}{c.username, c.password}, params...)

	type result struct {
		reply interface{}
		err   error
	}
	done := make(chan result, 1)
	go func() {
		var reply interface{}
		err := c.rpc.Call(method, all, &reply)
		done <- result{reply: reply, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		return res.reply, nil
	}
}

func (c *LoopiaChecker) Close() error {
	return c.rpc.Close()
}
