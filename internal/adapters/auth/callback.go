package auth

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

var (
	ErrStateMismatch = errors.New("oauth callback state mismatch")
	ErrMissingState  = errors.New("expected state is required")
)

func NewState() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// CallbackServer accepts the single redirect that carries the
// authorization code, then stops serving.
type CallbackServer struct {
	expectedState string
	listener      net.Listener
	server        *http.Server
	resultCh      chan callbackResult
	resultOnce    sync.Once
	closeOnce     sync.Once
}

type callbackResult struct {
	code string
	err  error
}

func StartCallbackServer(listenAddr string, expectedState string) (*CallbackServer, error) {
	if expectedState == "" {
		return nil, ErrMissingState
	}
	if listenAddr == "" {
		listenAddr = DefaultListenAddr
	}

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("listen callback server: %w", err)
	}

	cb := &CallbackServer{
		expectedState: expectedState,
		listener:      listener,
		resultCh:      make(chan callbackResult, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", cb.handleCallback)

	cb.server = &http.Server{Handler: mux}

	go func() {
		if serveErr := cb.server.Serve(cb.listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			cb.trySendResult(callbackResult{err: serveErr})
		}
	}()

	return cb, nil
}

func (c *CallbackServer) RedirectURI() string {
	if tcpAddr, ok := c.listener.Addr().(*net.TCPAddr); ok {
		return fmt.Sprintf("http://localhost:%d", tcpAddr.Port)
	}
	return "http://localhost"
}

// WaitForCode blocks until the redirect arrives or ctx is done. There is no
// timeout of its own: the user may take as long as they need to consent.
func (c *CallbackServer) WaitForCode(ctx context.Context) (string, error) {
	defer func() { _ = c.Close() }()

	select {
	case result := <-c.resultCh:
		return result.code, result.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (c *CallbackServer) Close() error {
	var closeErr error
	c.closeOnce.Do(func() {
		closeErr = c.server.Close()
	})
	return closeErr
}

func (c *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	code, err := codeFromQuery(r.URL.Query(), c.expectedState)
	if err != nil {
		c.trySendResult(callbackResult{err: err})
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c.trySendResult(callbackResult{code: code})
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Authentication complete. You can close this window."))
}

func (c *CallbackServer) trySendResult(result callbackResult) {
	c.resultOnce.Do(func() {
		c.resultCh <- result
	})
}

func codeFromQuery(query url.Values, expectedState string) (string, error) {
	if state := query.Get("state"); expectedState != "" && state != expectedState {
		return "", ErrStateMismatch
	}
	if oauthError := query.Get("error"); oauthError != "" {
		if description := query.Get("error_description"); description != "" {
			oauthError = oauthError + ": " + description
		}
		return "", errors.New(oauthError)
	}
	code := query.Get("code")
	if code == "" {
		return "", errors.New("missing authorization code")
	}
	return code, nil
}

// readPastedCode reads one line holding either the full redirect URL or the
// bare code. A state in a pasted URL must still match.
func readPastedCode(in io.Reader, expectedState string) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read pasted code: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("missing authorization code")
	}

	if parsed, parseErr := url.Parse(line); parseErr == nil && parsed.RawQuery != "" {
		query := parsed.Query()
		if query.Get("state") == "" {
			expectedState = ""
		}
		return codeFromQuery(query, expectedState)
	}
	return line, nil
}
