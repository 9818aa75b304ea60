package dawg

// wangHash is Thomas Wang's 32-bit integer mix function
// (http://www.concentric.net/~Ttwang/tech/inthash.htm), used both by
// DawgBuilder's fingerprint hash table (to find an existing equivalent
// transition chain to merge into) and by the dictionary builder's link
// table (to map a merging dawg state to the double-array offset it was
// last placed at).
func wangHash(key uint32) uint32 {
	key = ^key + (key << 15)
	key = key ^ (key >> 12)
	key = key + (key << 2)
	key = key ^ (key >> 4)
	key = key * 2057
	key = key ^ (key >> 16)
	return key
}
