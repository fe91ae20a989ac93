package encode

import "github.com/scenekit/scenemerge/format"

type EncState struct {
	Format format.Format
	Indent int
	Colors *Colors
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(st *EncState) { st.Format = f }
}

func EncodeIndent(n int) EncodeOption {
	return func(st *EncState) { st.Indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(st *EncState) { st.Colors = c }
}

func newEncState(opts []EncodeOption) *EncState {
	st := &EncState{Format: format.YAMLFormat, Indent: 2}
	for _, opt := range opts {
		opt(st)
	}
	return st
}
