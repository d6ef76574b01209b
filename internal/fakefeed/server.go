package fakefeed

import (
	"fmt"
	"maps"
	"sync"

	"github.com/MKhiriev/go-broadcast-datafeed/internal/config"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// Server holds the state behind the fake endpoints. Create it with
// [NewServer] and mount [Server.Init].
type Server struct {
	username     string
	passwordHash []byte
	sessions     *sessionStore

	quotesMu sync.RWMutex
	quotes   map[string]map[string]string

	hitsMu sync.Mutex
	hits   map[string]int

	logger *logger.Logger
}

func NewServer(cfg config.FakeFeedConfig, log *logger.Logger) (*Server, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash fake feed password: %w", err)
	}

	log.Info().Str("username", cfg.Username).Msg("fake feed created")
	return &Server{
		username:     cfg.Username,
		passwordHash: hash,
		sessions:     newSessionStore(cfg.TokenSignKey, cfg.TokenIssuer, cfg.TokenDuration),
		quotes:       make(map[string]map[string]string),
		hits:         make(map[string]int),
		logger:       log,
	}, nil
}

// SetQuote stores the field values served for symbol, replacing earlier
// values.
func (s *Server) SetQuote(symbol string, fields map[string]string) {
	s.quotesMu.Lock()
	defer s.quotesMu.Unlock()
	s.quotes[symbol] = maps.Clone(fields)
}

// Hits returns how many requests reached path, e.g. "/Authentication/v1/keep".
func (s *Server) Hits(path string) int {
	s.hitsMu.Lock()
	defer s.hitsMu.Unlock()
	return s.hits[path]
}

// Sessions returns the number of live sessions.
func (s *Server) Sessions() int {
	return s.sessions.len()
}

func (s *Server) checkCredentials(login, password string) bool {
	if login != s.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
}

// lookupQuotes returns the known symbols of symbols, each restricted to
// fields. An empty fields list selects every field.
func (s *Server) lookupQuotes(symbols, fields []string) map[string]map[string]string {
	s.quotesMu.RLock()
	defer s.quotesMu.RUnlock()

	data := make(map[string]map[string]string, len(symbols))
	for _, symbol := range symbols {
		values, ok := s.quotes[symbol]
		if !ok {
			continue
		}
		if len(fields) == 0 {
			data[symbol] = maps.Clone(values)
			continue
		}
		selected := make(map[string]string, len(fields))
		for _, f := range fields {
			if v, ok := values[f]; ok {
				selected[f] = v
			}
		}
		data[symbol] = selected
	}
	return data
}

// DemoQuotes is the quote table served by the fakefeed binary.
func DemoQuotes() map[string]map[string]string {
	return map[string]map[string]string{
		"PETR4": {"ULT": "28.50", "VAR": "1.25%", "ABE": "28.10", "MAX": "28.74", "MIN": "27.98"},
		"VALE3": {"ULT": "61.32", "VAR": "-0.84%", "ABE": "61.80", "MAX": "62.05", "MIN": "61.10"},
		"ITUB4": {"ULT": "33.07", "VAR": "0.42%", "ABE": "32.95", "MAX": "33.20", "MIN": "32.80"},
		"BBDC4": {"ULT": "13.91", "VAR": "-1.07%", "ABE": "14.05", "MAX": "14.09", "MIN": "13.85"},
	}
}
