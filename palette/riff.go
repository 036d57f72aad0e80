package palette

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"voronoi/canvas"

	"golang.org/x/image/riff"
)

/*
typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

const palVersion = 0x0300

// Load reads every color of a RIFF palette file.
func Load(name string) ([]canvas.Color, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open palette %q: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close palette", "name", name, "error", closeErr)
		}
	}()

	colors, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("could not load palette %q: %w", name, err)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("palette %q has no colors", name)
	}
	return colors, nil
}

// ReadFrom decodes a RIFF PAL stream. Colors of all data chunks, including
// those nested in PAL lists, are returned in file order.
func ReadFrom(r io.Reader) ([]canvas.Color, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	return readChunks(rd, string(formType[:]), nil)
}

func readChunks(r *riff.Reader, ident string, res []canvas.Color) ([]canvas.Color, error) {
	for i := 0; ; i++ {
		id, size, data, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return res, nil
			}
			return res, fmt.Errorf("could not read chunk %q#%d: %w", ident, i, err)
		}

		chunkIdent := fmt.Sprintf("%s#%d", ident, i)
		switch id {
		case riff.LIST:
			listType, list, err := riff.NewListReader(size, data)
			if err != nil {
				return res, fmt.Errorf("could not read list from chunk %q: %w", chunkIdent, err)
			} else if listType != palType {
				return res, fmt.Errorf("chunk %q unsupported list type: %s", chunkIdent, string(listType[:]))
			}
			if res, err = readChunks(list, chunkIdent, res); err != nil {
				return res, err
			}
		case dataType:
			if res, err = readPalette(data, chunkIdent, res); err != nil {
				return res, err
			}
		default:
			return res, fmt.Errorf("unsupported chunk type in %q: %s", chunkIdent, string(id[:]))
		}
	}
}

func readPalette(r io.Reader, ident string, res []canvas.Color) ([]canvas.Color, error) {
	var hdr struct {
		Version uint16
		Count   uint16
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return res, fmt.Errorf("could not read header of chunk %s: %w", ident, err)
	}
	if hdr.Version != palVersion {
		return res, fmt.Errorf("unsupported palette version in chunk %s: %#04x", ident, hdr.Version)
	}

	var entry [4]byte
	for i := range hdr.Count {
		if _, err := io.ReadFull(r, entry[:]); err != nil {
			return res, fmt.Errorf("could not read color %d/%d from chunk %s: %w", i, hdr.Count, ident, err)
		}
		res = append(res, canvas.FromHex(uint32(entry[0])<<16|uint32(entry[1])<<8|uint32(entry[2])))
	}

	return res, nil
}

// WriteTo encodes colors as a RIFF PAL stream with a single data chunk and
// returns the number of bytes written.
func WriteTo(w io.Writer, colors []canvas.Color) (int64, error) {
	if len(colors) > 0xFFFF {
		return 0, fmt.Errorf("too many palette colors: %d", len(colors))
	}

	chunkSize := 4 + 4*len(colors)     // palVersion + palNumEntries + 4 bytes/color
	formSize := 4 + 4 + 4 + chunkSize // form type + chunk id + chunk size + chunk

	buf := make([]byte, 0, 8+formSize)
	buf = append(buf, riffType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(formSize))
	buf = append(buf, palType[:]...)
	buf = append(buf, dataType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(chunkSize))
	buf = binary.LittleEndian.AppendUint16(buf, palVersion)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(colors)))
	for _, c := range colors {
		r, g, b := c.ByteTriple()
		buf = append(buf, r, g, b, 0x00)
	}

	n, err := w.Write(buf)
	if err != nil {
		return int64(n), fmt.Errorf("could not write palette: %w", err)
	} else if n != len(buf) {
		return int64(n), fmt.Errorf("wrote only %d/%d bytes", n, len(buf))
	}
	return int64(n), nil
}
