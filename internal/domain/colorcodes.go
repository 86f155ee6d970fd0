package domain

// ColorCode is a Minecraft formatting code usable inside recipe names.
type ColorCode struct {
	Code string // e.g. "&6"
	Hex  string // colour the code renders as in game
}

// ColorCodes lists the codes offered to the operator while naming a brew.
var ColorCodes = []ColorCode{
	{"&0", "#000000"},
	{"&1", "#0000AA"},
	{"&2", "#00AA00"},
	{"&3", "#00AAAA"},
	{"&4", "#AA0000"},
	{"&5", "#AA00AA"},
	{"&6", "#FFAA00"},
	{"&7", "#AAAAAA"},
	{"&8", "#555555"},
	{"&9", "#5555FF"},
	{"&a", "#55FF55"},
	{"&b", "#55FFFF"},
	{"&c", "#FF5555"},
	{"&d", "#FF55FF"},
	{"&e", "#FFFF55"},
	{"&f", "#FFFFFF"},
	{"&g", "#DDD605"},
	{"&h", "#E3D4D1"},
	{"&i", "#CECACA"},
	{"&j", "#443A3B"},
	{"&m", "#971607"},
	{"&n", "#B4684D"},
	{"&p", "#DEB12D"},
	{"&q", "#47A036"},
	{"&s", "#2CBAA8"},
	{"&t", "#21497B"},
	{"&u", "#9A5CC6"},
}
