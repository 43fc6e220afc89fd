package ggml

import "testing"

func TestContainerTypeFromMagic(t *testing.T) {
	tests := []struct {
		magic uint32
		want  ContainerType
		ok    bool
	}{
		{MagicGGML, ContainerGGML, true},
		{MagicGGMF, ContainerGGMF, true},
		{MagicGGJT, ContainerGGJT, true},
		{0x46554747, 0, false}, // "GGUF": a different format family
		{0, 0, false},
		{0xdeadbeef, 0, false},
	}

	for _, tt := range tests {
		got, ok := ContainerTypeFromMagic(tt.magic)
		if ok != tt.ok {
			t.Errorf("ContainerTypeFromMagic(%#x) ok = %v, want %v", tt.magic, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ContainerTypeFromMagic(%#x) = %s, want %s", tt.magic, got, tt.want)
		}
	}
}

func TestContainerVersions(t *testing.T) {
	tests := []struct {
		container ContainerType
		version   uint32
		want      bool
	}{
		{ContainerGGML, 0, true},
		{ContainerGGML, 1, false},
		{ContainerGGMF, 1, true},
		{ContainerGGMF, 0, false},
		{ContainerGGMF, 2, false},
		{ContainerGGJT, 1, true},
		{ContainerGGJT, 2, true},
		{ContainerGGJT, 3, true},
		{ContainerGGJT, 4, false},
		{ContainerGGJT, 0, false},
	}

	for _, tt := range tests {
		if got := tt.container.SupportsVersion(tt.version); got != tt.want {
			t.Errorf("%s.SupportsVersion(%d) = %v, want %v", tt.container, tt.version, got, tt.want)
		}
	}
}

func TestContainerProperties(t *testing.T) {
	if ContainerGGML.Versioned() {
		t.Error("ggml must be unversioned")
	}
	if !ContainerGGMF.Versioned() || !ContainerGGJT.Versioned() {
		t.Error("ggmf and ggjt must be versioned")
	}

	if ContainerGGML.HasVocabularyScores() {
		t.Error("ggml must not carry vocabulary scores")
	}
	if !ContainerGGMF.HasVocabularyScores() || !ContainerGGJT.HasVocabularyScores() {
		t.Error("ggmf and ggjt must carry vocabulary scores")
	}
}

func TestContainerString(t *testing.T) {
	tests := []struct {
		container ContainerType
		want      string
	}{
		{ContainerGGML, "ggml"},
		{ContainerGGMF, "ggmf"},
		{ContainerGGJT, "ggjt"},
		{ContainerType(9), "unknown(9)"},
	}

	for _, tt := range tests {
		if got := tt.container.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
