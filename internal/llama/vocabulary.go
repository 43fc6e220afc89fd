package llama

import "io"

// Vocabulary holds the token table carried verbatim in the model file.
// GGMF and GGJT containers store a score next to each token; the legacy
// GGML container stores tokens only, in which case Scores is all zeros.
type Vocabulary struct {
	Tokens []string
	Scores []float32
}

// Len returns the number of tokens.
func (v *Vocabulary) Len() int { return len(v.Tokens) }

// Token returns the token bytes for an id, or "" if out of range.
func (v *Vocabulary) Token(id int) string {
	if id < 0 || id >= len(v.Tokens) {
		return ""
	}
	return v.Tokens[id]
}

func readVocabulary(r io.Reader, nVocab int, withScores bool) (*Vocabulary, error) {
	vocab := &Vocabulary{
		Tokens: make([]string, 0, nVocab),
		Scores: make([]float32, 0, nVocab),
	}
	for i := 0; i < nVocab; i++ {
		rawLen, err := readU32(r)
		if err != nil {
			return nil, err
		}
		token, err := readString(r, int(rawLen))
		if err != nil {
			return nil, err
		}

		var score float32
		if withScores {
			if score, err = readF32(r); err != nil {
				return nil, err
			}
		}

		vocab.Tokens = append(vocab.Tokens, token)
		vocab.Scores = append(vocab.Scores, score)
	}
	return vocab, nil
}
