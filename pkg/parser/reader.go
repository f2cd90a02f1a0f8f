package parser

import (
	"math/big"
	"strconv"

	"github.com/nukata/goarith"
	"github.com/steelseries/golisp"
)

// reader builds golisp data from golisp tokens. Numeric literals are decoded
// from their token text and recorded beside the data they stand for, since
// golisp itself holds floats as float32 and integers as int64.
type reader struct {
	tokens  *golisp.Tokenizer
	numbers map[*golisp.Data]goarith.Number
}

func newReader(text string) *reader {
	return &reader{
		tokens:  golisp.NewTokenizerFromString(text),
		numbers: make(map[*golisp.Data]goarith.Number),
	}
}

// readAll reads every form in the text. Any token that cannot start a form,
// such as an unbalanced closing paren, is a syntax error.
func (r *reader) readAll() ([]*golisp.Data, error) {
	var forms []*golisp.Data
	for {
		form, eof, err := r.readForm()
		if err != nil {
			return nil, err
		}
		if eof {
			return forms, nil
		}
		forms = append(forms, form)
	}
}

func (r *reader) readForm() (*golisp.Data, bool, error) {
	tok, lit := r.tokens.NextToken()
	switch tok {
	case golisp.EOF:
		return nil, true, nil
	case golisp.NUMBER:
		r.tokens.ConsumeToken()
		return r.integer(lit, 10)
	case golisp.HEXNUMBER:
		r.tokens.ConsumeToken()
		return r.integer(lit, 16)
	case golisp.BINARYNUMBER:
		r.tokens.ConsumeToken()
		return r.integer(lit, 2)
	case golisp.FLOAT:
		r.tokens.ConsumeToken()
		return r.float(lit)
	case golisp.STRING:
		r.tokens.ConsumeToken()
		return golisp.StringWithValue(lit), false, nil
	case golisp.SYMBOL:
		r.tokens.ConsumeToken()
		return golisp.Intern(lit), false, nil
	case golisp.TRUE:
		r.tokens.ConsumeToken()
		return golisp.LispTrue, false, nil
	case golisp.FALSE:
		r.tokens.ConsumeToken()
		return golisp.LispFalse, false, nil
	case golisp.QUOTE:
		r.tokens.ConsumeToken()
		datum, eof, err := r.readForm()
		if err != nil {
			return nil, false, err
		}
		if eof {
			return nil, false, syntaxErrorf(nil, "parser: unexpected end of input after '")
		}
		return golisp.Cons(golisp.Intern(keywordQuote), golisp.Cons(datum, nil)), false, nil
	case golisp.LPAREN:
		r.tokens.ConsumeToken()
		return r.readList()
	case golisp.RPAREN:
		return nil, false, syntaxErrorf(nil, "parser: unexpected )")
	case golisp.PERIOD:
		return nil, false, syntaxErrorf(nil, "parser: unexpected . outside a list")
	case golisp.ILLEGAL:
		return nil, false, syntaxErrorf(nil, "parser: illegal character %s", lit)
	default:
		return nil, false, syntaxErrorf(nil, "parser: unsupported syntax %q", lit)
	}
}

func (r *reader) readList() (*golisp.Data, bool, error) {
	var cells []*golisp.Data
	for {
		tok, _ := r.tokens.NextToken()
		switch tok {
		case golisp.EOF:
			return nil, false, syntaxErrorf(nil, "parser: unexpected end of input, expected )")
		case golisp.RPAREN:
			r.tokens.ConsumeToken()
			return golisp.ArrayToList(cells), false, nil
		case golisp.PERIOD:
			r.tokens.ConsumeToken()
			if len(cells) == 0 {
				return nil, false, syntaxErrorf(nil, "parser: dotted tail without a head")
			}
			tail, eof, err := r.readForm()
			if err != nil {
				return nil, false, err
			}
			if eof {
				return nil, false, syntaxErrorf(nil, "parser: unexpected end of input, expected )")
			}
			if next, _ := r.tokens.NextToken(); next != golisp.RPAREN {
				return nil, false, syntaxErrorf(tail, "parser: expected ) after dotted tail")
			}
			r.tokens.ConsumeToken()
			return golisp.ArrayToListWithTail(cells, tail), false, nil
		default:
			form, _, err := r.readForm()
			if err != nil {
				return nil, false, err
			}
			cells = append(cells, form)
		}
	}
}

// integer keeps literals of any size; those outside int64 become big integers.
func (r *reader) integer(lit string, base int) (*golisp.Data, bool, error) {
	n, ok := new(big.Int).SetString(lit, base)
	if !ok {
		return nil, false, syntaxErrorf(nil, "parser: malformed integer %q", lit)
	}
	var data *golisp.Data
	if n.IsInt64() {
		data = golisp.IntegerWithValue(n.Int64())
	} else {
		data = golisp.IntegerWithValue(0)
	}
	r.numbers[data] = goarith.AsNumber(n)
	return data, false, nil
}

func (r *reader) float(lit string) (*golisp.Data, bool, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, false, syntaxErrorf(nil, "parser: malformed number %q", lit)
	}
	data := golisp.FloatWithValue(float32(f))
	r.numbers[data] = goarith.AsNumber(f)
	return data, false, nil
}

// number returns the full-precision value of a numeric literal.
func (r *reader) number(form *golisp.Data) (goarith.Number, bool) {
	n, ok := r.numbers[form]
	return n, ok
}
