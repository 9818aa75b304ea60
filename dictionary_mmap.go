//go:build unix

package dawg

import (
	"encoding/binary"
	"os"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// MappedDictionary is a Dictionary backed by an mmap'd file rather than a
// heap-allocated slice: dawgdic's Dictionary::Map equivalent. It lets a
// process open a multi-gigabyte dictionary without copying it into the Go
// heap or paying GC scan cost for it; the kernel page cache, not the
// runtime, owns the memory.
type MappedDictionary struct {
	Dictionary
	data []byte
}

// MapDictionaryFile mmaps path read-only and interprets it as a Dictionary
// container (uint32 count, then that many 4-byte units, host-endian). The
// returned value must be closed with Close to release the mapping.
func MapDictionaryFile(path string) (*MappedDictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dawg: opening dictionary file")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "dawg: stat dictionary file")
	}
	size := info.Size()
	if size < 4 {
		return nil, ErrTruncated
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrap(err, "dawg: mmap dictionary file")
	}

	count := binary.NativeEndian.Uint32(data[:4])
	wantBytes := 4 + int64(count)*4
	if wantBytes > size {
		unix.Munmap(data)
		return nil, ErrTruncated
	}

	md := &MappedDictionary{data: data}
	md.units = unsafe.Slice((*dictionaryUnit)(unsafe.Pointer(&data[4])), count)
	return md, nil
}

// Close unmaps the backing file.
func (m *MappedDictionary) Close() error {
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	m.units = nil
	return unix.Munmap(data)
}
