package types

type Tokenizer interface {
	Tokenize() []Fragment
}

// Tokenize with statistics
type TokenizerWithStats interface {
	Tokenizer
	GetStats() FragmentStats
}
