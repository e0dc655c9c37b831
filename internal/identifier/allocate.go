package identifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Allocate returns an identifier that is not a substring of currentText nor
// of the control tag it will be embedded in. Uniqueness is recomputed from
// the text on every call; collisions are retried until a fresh value comes up.
func (a *Allocator) Allocate(ctx context.Context, currentText string) (string, error) {
	collisions := 0
	for {
		id, err := a.generate()
		if err != nil {
			return "", fmt.Errorf("identifier.Allocate: %w", err)
		}
		if id != "" && !strings.Contains(currentText, id) && !strings.Contains(a.skeleton, id) {
			if collisions > 0 {
				a.l.Debugf(ctx, "identifier.Allocate: %d collisions before %s", collisions, id)
			}
			return id, nil
		}
		collisions++
	}
}

// RandomGenerator draws identifiers of length characters from Alphabet,
// six bits per character, out of the random bytes of a version 4 UUID.
func RandomGenerator(length int) Generator {
	return func() (string, error) {
		u, err := uuid.NewRandom()
		if err != nil {
			return "", err
		}
		return encode(u, length), nil
	}
}

// encode packs the random bits of u into length alphabet characters. The
// version and variant bits (byte 6 high nibble, byte 8 top two bits) are skipped.
func encode(u uuid.UUID, length int) string {
	var bitsBuf uint64
	var nbits uint
	var sb strings.Builder
	sb.Grow(length)

	for i := 0; i < len(u) && sb.Len() < length; i++ {
		b := uint64(u[i])
		width := uint(8)
		switch i {
		case 6:
			b &= 0x0f
			width = 4
		case 8:
			b &= 0x3f
			width = 6
		}
		bitsBuf = bitsBuf<<width | b
		nbits += width
		for nbits >= 6 && sb.Len() < length {
			nbits -= 6
			sb.WriteByte(Alphabet[(bitsBuf>>nbits)&0x3f])
		}
	}
	return sb.String()
}
