package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"vhdlparse/internal/project"
	"vhdlparse/internal/source"
	"vhdlparse/internal/token"
)

// Increment when the payload format changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores tokenization artifacts keyed by content digest so
// unchanged files skip relexing. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedToken is one token flattened for serialization. Trivia is not
// cached; consumers that need it relex.
type CachedToken struct {
	Kind  uint8
	Start uint32
	End   uint32
	Text  string
}

// DiskPayload is the cached artifact for one source file.
type DiskPayload struct {
	Schema      uint16
	Path        string
	ContentHash project.Digest
	Tokens      []CachedToken
	// Broken marks files whose lexing produced errors; their token
	// slices are advisory only.
	Broken bool
}

// OpenDiskCache initializes the cache at the standard user location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes the cache at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	return filepath.Join(c.dir, "tokens", hex.EncodeToString(key[:])+".mp")
}

// Put serializes a payload under its key, replacing atomically.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}

// Get loads the payload for key. A missing entry or a schema mismatch
// reads as a miss, not an error.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll removes every cached payload, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// payloadToTokens rebuilds tokens from a cached payload. Leading
// trivia is not restored.
func payloadToTokens(payload *DiskPayload, fileID source.FileID) []token.Token {
	tokens := make([]token.Token, len(payload.Tokens))
	for i, cached := range payload.Tokens {
		tokens[i] = token.Token{
			Kind: token.Kind(cached.Kind),
			Span: source.Span{File: fileID, Start: cached.Start, End: cached.End},
			Text: cached.Text,
		}
	}
	return tokens
}

// tokensToPayload flattens lexed tokens for caching.
func tokensToPayload(path string, hash project.Digest, tokens []token.Token, broken bool) *DiskPayload {
	cached := make([]CachedToken, len(tokens))
	for i, tok := range tokens {
		cached[i] = CachedToken{
			Kind:  uint8(tok.Kind),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Text:  tok.Text,
		}
	}
	return &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        path,
		ContentHash: hash,
		Tokens:      cached,
		Broken:      broken,
	}
}
