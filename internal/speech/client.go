// Package speech relays live interview audio to Deepgram and surfaces transcripts.
package speech

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lshigami/auriter/config"
	"github.com/rs/zerolog/log"
)

const (
	DefaultLanguage = "hi"
	DefaultURL      = "wss://api.deepgram.com/v1/listen"

	sampleRate   = "16000"
	channels     = "1"
	model        = "nova-2"
	closeTimeout = time.Second
)

var (
	ErrAlreadyStarted = errors.New("speech client already connecting or connected")
	ErrClosed         = errors.New("speech client closed")
)

type State int32

const (
	StateIdle State = iota
	StateConnecting
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

type Options struct {
	Language string
}

// Transcriber is the capability the relay endpoint needs from a client.
type Transcriber interface {
	OnTranscript(sink func(text string))
	Connect(ctx context.Context, opts Options) error
	SendAudio(frame []byte)
	Close() error
	Done() <-chan struct{}
}

// Factory creates one Transcriber per live session.
type Factory func() Transcriber

func NewFactory(cfg *config.Config) Factory {
	if cfg.Deepgram.ApiKey == "" {
		log.Warn().Msg("DEEPGRAM_API_KEY is not set. Live transcription connections will be rejected.")
	}
	return func() Transcriber {
		return NewClient(cfg.Deepgram.ApiKey, cfg.Deepgram.URL)
	}
}

// Client holds one Deepgram streaming connection. It never reconnects;
// after Close or a transport failure a new Client is needed.
type Client struct {
	apiKey  string
	baseURL string
	dialer  websocket.Dialer

	mu    sync.Mutex
	state State
	conn  *websocket.Conn
	sink  func(string)

	writeMu  sync.Mutex
	done     chan struct{}
	doneOnce sync.Once
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		dialer: websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
			Subprotocols:     []string{"token", apiKey},
		},
		done: make(chan struct{}),
	}
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Done is closed once the client reaches StateClosed.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// OnTranscript registers the sink for non-empty transcripts. It may be
// called before or after Connect.
func (c *Client) OnTranscript(sink func(text string)) {
	c.mu.Lock()
	c.sink = sink
	c.mu.Unlock()
}

// Connect dials the vendor and returns once the connection is open.
// On failure the client returns to StateIdle and Connect may be called again.
func (c *Client) Connect(ctx context.Context, opts Options) error {
	c.mu.Lock()
	switch c.state {
	case StateClosed:
		c.mu.Unlock()
		return ErrClosed
	case StateConnecting, StateOpen:
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.state = StateConnecting
	c.mu.Unlock()

	endpoint, err := c.endpoint(opts)
	if err != nil {
		c.setState(StateIdle)
		return err
	}

	conn, resp, err := c.dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		c.setState(StateIdle)
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		log.Error().Err(err).Int("status", status).Msg("Deepgram connection failed")
		return fmt.Errorf("connect to deepgram: %w", err)
	}

	c.mu.Lock()
	if c.state != StateConnecting {
		// Closed while dialing.
		c.mu.Unlock()
		_ = conn.Close()
		return ErrClosed
	}
	c.conn = conn
	c.state = StateOpen
	c.mu.Unlock()

	log.Info().Str("language", languageOrDefault(opts.Language)).Msg("Deepgram connection opened")
	go c.readLoop(conn)
	return nil
}

// SendAudio forwards one audio frame. Frames sent while the client is not
// open are dropped, and write errors are only logged.
func (c *Client) SendAudio(frame []byte) {
	c.mu.Lock()
	conn := c.conn
	open := c.state == StateOpen
	c.mu.Unlock()
	if !open || conn == nil {
		return
	}

	c.writeMu.Lock()
	err := conn.WriteMessage(websocket.BinaryMessage, frame)
	c.writeMu.Unlock()
	if err != nil {
		log.Warn().Err(err).Int("bytes", len(frame)).Msg("Failed to send audio to Deepgram")
	}
}

// Close is idempotent.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return nil
	}
	c.state = StateClosed
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		c.markDone()
		return nil
	}

	c.writeMu.Lock()
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(closeTimeout))
	c.writeMu.Unlock()
	err := conn.Close()
	c.markDone()
	return err
}

type transcriptMessage struct {
	Type    string `json:"type"`
	Channel struct {
		Alternatives []struct {
			Transcript string `json:"transcript"`
		} `json:"alternatives"`
	} `json:"channel"`
	IsFinal bool `json:"is_final"`
}

func (c *Client) readLoop(conn *websocket.Conn) {
	defer func() {
		c.setState(StateClosed)
		_ = conn.Close()
		c.markDone()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && c.State() == StateOpen {
				log.Warn().Err(err).Msg("Deepgram connection closed unexpectedly")
			}
			return
		}

		var msg transcriptMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Warn().Err(err).Int("bytes", len(data)).Msg("Dropping malformed Deepgram message")
			continue
		}
		if len(msg.Channel.Alternatives) == 0 {
			continue
		}
		text := strings.TrimSpace(msg.Channel.Alternatives[0].Transcript)
		if text == "" {
			continue
		}

		c.mu.Lock()
		sink := c.sink
		c.mu.Unlock()
		if sink != nil {
			sink(text)
		}
	}
}

func (c *Client) endpoint(opts Options) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid deepgram url %q: %w", c.baseURL, err)
	}
	q := u.Query()
	q.Set("sample_rate", sampleRate)
	q.Set("channels", channels)
	q.Set("interim_results", "true")
	q.Set("language", languageOrDefault(opts.Language))
	q.Set("model", model)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Client) markDone() {
	c.doneOnce.Do(func() { close(c.done) })
}

func languageOrDefault(lang string) string {
	if lang = strings.TrimSpace(lang); lang != "" {
		return lang
	}
	return DefaultLanguage
}
