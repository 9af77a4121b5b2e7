package machine

import (
	"io/ioutil"

	"github.com/pkg/errors"
)

// ROM sizes a C64-class machine expects. All three are checked exactly:
// BASIC is the 8KiB image that fills the $A000-$BFFF window, and a 16KiB
// BASIC image is rejected.
const (
	CharROMSize   = 4 * 1024
	KernalROMSize = 8 * 1024
	BasicROMSize  = 8 * 1024
)

// ROMSet holds the three flat, headerless ROM images a C64-class machine
// boots from. There is no checksum or magic number; a missing file, or one
// that is shorter or longer than its expected size, is the one fatal startup
// condition this core recognizes.
type ROMSet struct {
	Char   []byte
	Basic  []byte
	Kernal []byte
}

// LoadROMSet reads the CHAR, BASIC, and KERNAL images from disk, in that
// fixed order, wrapping any failure with the offending path.
func LoadROMSet(charPath, basicPath, kernalPath string) (*ROMSet, error) {
	char, err := loadExact(charPath, CharROMSize)
	if err != nil {
		return nil, errors.Wrap(err, "char rom")
	}
	basic, err := loadExact(basicPath, BasicROMSize)
	if err != nil {
		return nil, errors.Wrap(err, "basic rom")
	}
	kernal, err := loadExact(kernalPath, KernalROMSize)
	if err != nil {
		return nil, errors.Wrap(err, "kernal rom")
	}
	return &ROMSet{Char: char, Basic: basic, Kernal: kernal}, nil
}

func loadExact(path string, want int) ([]byte, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if len(data) != want {
		return nil, errors.Errorf("%s: expected %d bytes, got %d", path, want, len(data))
	}
	return data, nil
}
