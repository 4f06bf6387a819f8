package clay

// HashNumber hashes a numeric offset under a parent seed.
// This is the scheme the core uses for anonymous elements: the offset is the
// parent's child count at the moment the element is configured.
func HashNumber(offset, seed uint32) ElementID {
	hash := seed
	hash += offset + 48
	hash += hash << 10
	hash ^= hash >> 6

	hash += hash << 3
	hash ^= hash >> 11
	hash += hash << 15
	return ElementID{ID: hash + 1, Offset: offset, BaseID: seed, StringID: DefaultStringID}
}

// HashString hashes key together with offset under a parent seed.
// BaseID is the hash of key alone, so siblings sharing a key share a BaseID.
func HashString(key string, offset, seed uint32) ElementID {
	base := seed
	for i := 0; i < len(key); i++ {
		// Key bytes are mixed as signed chars.
		base += uint32(int32(int8(key[i])))
		base += base << 10
		base ^= base >> 6
	}

	hash := base
	hash += offset
	hash += hash << 10
	hash ^= hash >> 6

	hash += hash << 3
	base += base << 3
	hash ^= hash >> 11
	base ^= base >> 11
	hash += hash << 15
	base += base << 15
	return ElementID{ID: hash + 1, Offset: offset, BaseID: base + 1, StringID: key}
}
