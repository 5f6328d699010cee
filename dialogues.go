package main

// The demonstration "knowledge": famous Bollywood dialogues plus a few general
// phrases. Keys are space-joined word sequences, values are the words that may
// follow. Candidates keep their casing and punctuation so generated lines read
// like the originals.
var dialogues = map[string][]string{
	// Sholay
	"kitne aadmi":      {"the?"},
	"kitne aadmi the?": {"Sardar", "do", "the."},

	// Om Shanti Om
	"ek chutki sindoor": {"ki"},
	"sindoor ki keemat": {"tum", "kya", "jaano"},
	"tum kya jaano":     {"Ramesh", "Babu."},

	// DDLJ
	"bade bade deshon":    {"mein"},
	"deshon mein aisi":    {"choti"},
	"aisi choti choti":    {"baatein"},
	"choti choti baatein": {"hoti", "rehti", "hai", "Senorita."},

	// 3 Idiots
	"all izz":      {"well!"},
	"dost fail":    {"ho"},
	"dost fail ho": {"jaye"},
	"jaye toh":     {"dukh"},
	"dukh hota":    {"hai."},

	// More general phrases
	"pani puri":     {"khana"},
	"chai garam":    {"hai"},
	"mera naam":     {"Amit", "Rohan"},
	"mera naam hai": {"Amit", "Rohan"},
}
