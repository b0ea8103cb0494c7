package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	"github.com/klauspost/compress/zstd"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Export writes the whole document as JSON, zstd compressed when compress is
// set.
func Export(s Store, w io.Writer, compress bool) (err error) {
	doc, err := s.Get()
	if err != nil {
		return err
	}

	if compress {
		var enc *zstd.Encoder

		enc, err = zstd.NewWriter(w)
		if err != nil {
			return err
		}

		defer func() {
			cerr := enc.Close()
			if err == nil {
				err = cerr
			}
		}()

		w = enc
	}

	e := json.NewEncoder(w)
	e.SetIndent("", "  ")

	return e.Encode(doc)
}

// Import replaces the stored document with a backup produced by Export.
// Compressed backups are detected from their frame header.
func Import(s Store, r io.Reader) error {
	br := bufio.NewReader(r)

	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return err
	}

	var src io.Reader = br

	if bytes.Equal(head, zstdMagic) {
		dec, err := zstd.NewReader(br)
		if err != nil {
			return errInvalidBackup.Wrap(err)
		}

		defer dec.Close()

		src = dec
	}

	var doc Document

	if err := json.NewDecoder(src).Decode(&doc); err != nil {
		return errInvalidBackup.Wrap(err)
	}

	if doc == nil {
		return errInvalidBackup
	}

	return s.Set(doc)
}
