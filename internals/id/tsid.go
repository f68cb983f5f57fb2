// internals/id/tsid.go
package id

import (
	"crypto/rand"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"strings"
	"sync"
	"time"
)

// ID adalah TSID (Time-Sorted ID) 64-bit:
//   42 bit  → millisecond sejak epoch 2020-01-01 UTC
//   10 bit  → node (diacak sekali per proses)
//   12 bit  → counter per millisecond
//
// Representasi string: 13 karakter Crockford base32, sort order string ==
// sort order numerik. Dipakai sebagai primary key (bigint) sekaligus token
// eksternal di seluruh API.
type ID int64

const (
	// 2020-01-01T00:00:00Z dalam unix millis
	epochMillis int64 = 1577836800000

	nodeBits    = 10
	counterBits = 12
	counterMask = (1 << counterBits) - 1
	nodeMask    = (1 << nodeBits) - 1

	encodedLen = 13
)

// Alfabet Crockford base32 (tanpa I, L, O, U)
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var decodeMap [256]int8

func init() {
	for i := range decodeMap {
		decodeMap[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		decodeMap[alphabet[i]] = int8(i)
		// terima huruf kecil juga
		lower := alphabet[i] | 0x20
		if lower != alphabet[i] {
			decodeMap[lower] = int8(i)
		}
	}
}

// ParseError dikembalikan saat string bukan TSID yang valid. Di layer HTTP
// ini selalu dipetakan ke error client (400), bukan server error.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid id %q: %s", e.Input, e.Reason)
}

// ===== Generator (satu per proses) =====

type generator struct {
	mu      sync.Mutex
	node    int64
	lastMs  int64
	counter int64
}

var gen = newGenerator()

func newGenerator() *generator {
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		// fallback: pakai waktu boot sebagai node
		binary.BigEndian.PutUint16(b[:], uint16(time.Now().UnixNano()))
	}
	return &generator{node: int64(binary.BigEndian.Uint16(b[:])) & nodeMask}
}

func nowMillis() int64 {
	return time.Now().UnixMilli() - epochMillis
}

// New menghasilkan ID baru yang strictly time-ordered dalam satu proses.
func New() ID {
	gen.mu.Lock()
	defer gen.mu.Unlock()

	ms := nowMillis()
	if ms < gen.lastMs {
		// jam mundur → tetap pakai lastMs supaya urutan tidak rusak
		ms = gen.lastMs
	}
	if ms == gen.lastMs {
		gen.counter++
		if gen.counter > counterMask {
			// counter habis di millisecond ini, tunggu ms berikutnya
			for ms <= gen.lastMs {
				ms = nowMillis()
			}
			gen.counter = 0
		}
	} else {
		gen.counter = 0
	}
	gen.lastMs = ms

	v := (ms << (nodeBits + counterBits)) | (gen.node << counterBits) | gen.counter
	return ID(v)
}

// ===== Konversi =====

// String mengembalikan bentuk kanonik: 13 karakter Crockford base32, uppercase.
func (i ID) String() string {
	v := uint64(i)
	var buf [encodedLen]byte
	for pos := encodedLen - 1; pos >= 0; pos-- {
		buf[pos] = alphabet[v&31]
		v >>= 5
	}
	return string(buf[:])
}

// Int64 mengembalikan nilai numerik untuk kolom bigint.
func (i ID) Int64() int64 { return int64(i) }

// FromInt64 membungkus nilai mentah hasil baca dari storage.
func FromInt64(n int64) ID { return ID(n) }

// Parse mendekode bentuk string. Gagal pada panjang salah, karakter di luar
// alfabet, atau nilai yang tidak muat di 64 bit.
func Parse(s string) (ID, error) {
	if len(s) != encodedLen {
		return 0, &ParseError{Input: s, Reason: fmt.Sprintf("length must be %d", encodedLen)}
	}
	// karakter pertama membawa bit 61..64; nilai >= 16 berarti overflow 64 bit
	first := decodeMap[s[0]]
	if first < 0 {
		return 0, &ParseError{Input: s, Reason: fmt.Sprintf("invalid character %q", s[0])}
	}
	if first >= 16 {
		return 0, &ParseError{Input: s, Reason: "value overflows 64 bits"}
	}
	v := uint64(first)
	for pos := 1; pos < encodedLen; pos++ {
		d := decodeMap[s[pos]]
		if d < 0 {
			return 0, &ParseError{Input: s, Reason: fmt.Sprintf("invalid character %q", s[pos])}
		}
		v = v<<5 | uint64(d)
	}
	return ID(v), nil
}

// ===== JSON =====
// Di boundary HTTP, ID selalu string (tidak pernah angka mentah).

func (i ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *ID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// ===== GORM / database/sql =====

func (i ID) Value() (driver.Value, error) { return int64(i), nil }

func (i *ID) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*i = ID(v)
		return nil
	case nil:
		*i = 0
		return nil
	default:
		return fmt.Errorf("id: cannot scan %T into ID", src)
	}
}

// GormDataType membuat AutoMigrate memakai kolom bigint.
func (ID) GormDataType() string { return "bigint" }
