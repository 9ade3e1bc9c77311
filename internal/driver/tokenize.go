package driver

import (
	"vhdlparse/internal/diag"
	"vhdlparse/internal/lexer"
	"vhdlparse/internal/project"
	"vhdlparse/internal/source"
	"vhdlparse/internal/token"
)

// TokenizeResult bundles everything a caller needs to render tokens
// and their diagnostics.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads one file and lexes it to EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

// TokenizeCached is Tokenize with a disk cache consulted first. The
// key is the content digest, so an edited file always misses. Cached
// tokens carry no leading trivia.
func TokenizeCached(path string, maxDiagnostics int, cache *DiskCache) (result *TokenizeResult, hit bool, err error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, false, err
	}
	file := fs.Get(fileID)
	key := project.HashBytes(file.Content)

	var payload DiskPayload
	if ok, err := cache.Get(key, &payload); err == nil && ok && !payload.Broken {
		return &TokenizeResult{
			FileSet: fs,
			File:    file,
			Tokens:  payloadToTokens(&payload, fileID),
			Bag:     diag.NewBag(maxDiagnostics),
		}, true, nil
	}

	bag := diag.NewBag(maxDiagnostics)
	tokens := tokenizeFile(file, bag)
	if err := cache.Put(key, tokensToPayload(path, key, tokens, bag.HasErrors())); err != nil {
		return nil, false, err
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, false, nil
}

// tokenizeFile lexes an already loaded file into an existing bag.
func tokenizeFile(file *source.File, bag *diag.Bag) []token.Token {
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}
