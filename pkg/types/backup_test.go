package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupValidate(t *testing.T) {
	valid := Backup{
		ProfileName: "Ana",
		Categories:  []Category{{Key: "comida", Name: "Comida", Color: ColorAmber}},
		Symbols:     []Symbol{{CategoryKey: "comida", Text: "Suco"}},
	}

	tests := []struct {
		name    string
		mutate  func(b *Backup)
		wantErr error
	}{
		{"valid document", func(b *Backup) {}, nil},
		{"empty lists are valid", func(b *Backup) {
			b.Categories = []Category{}
			b.Symbols = []Symbol{}
		}, nil},
		{"missing categories", func(b *Backup) { b.Categories = nil }, ErrInvalidBackup},
		{"missing symbols", func(b *Backup) { b.Symbols = nil }, ErrInvalidBackup},
		{"category without key", func(b *Backup) { b.Categories[0].Key = "" }, ErrInvalidBackup},
		{"symbol without text", func(b *Backup) { b.Symbols[0].Text = "" }, ErrInvalidBackup},
		{"symbol referencing a key outside the document", func(b *Backup) {
			b.Symbols[0].CategoryKey = "brincar"
		}, ErrInvalidBackup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			b.Categories = append([]Category(nil), valid.Categories...)
			b.Symbols = append([]Symbol(nil), valid.Symbols...)
			tt.mutate(&b)
			err := b.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestBackupImageRoundTrip(t *testing.T) {
	// Binary images must survive JSON export as base64.
	b := Backup{
		ProfileName: "Ana",
		Categories:  []Category{{Key: "geral", Name: "Geral", Color: DefaultColor}},
		Symbols:     []Symbol{{CategoryKey: "geral", Text: "Foto", Image: []byte{0x00, 0xFF, 0x10}}},
	}

	data, err := json.Marshal(&b)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"image"`)

	var got Backup
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got.Symbols, 1)
	assert.Equal(t, b.Symbols[0].Image, got.Symbols[0].Image)
}
