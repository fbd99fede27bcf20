package mappings

// Spelled-number vocabulary for coercing word-form house numbers to digits.
// Ordinals are recognized as number words but are not convertible.

// NumberUnits covers zero through nineteen.
var NumberUnits = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
	"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17,
	"eighteen": 18, "nineteen": 19,
}

// NumberTens covers the tens words.
var NumberTens = map[string]int{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// NumberScales covers multiplier words.
var NumberScales = map[string]int{
	"hundred":  100,
	"thousand": 1000,
}

// SpelledNumberWords is the full set of cardinal and ordinal number words the
// county data has been seen to contain.
var SpelledNumberWords = map[string]bool{
	"zero": true, "one": true, "two": true, "three": true, "four": true,
	"five": true, "six": true, "seven": true, "eight": true, "nine": true,
	"ten": true, "eleven": true, "twelve": true, "thirteen": true,
	"fourteen": true, "fifteen": true, "sixteen": true, "seventeen": true,
	"eighteen": true, "nineteen": true, "twenty": true, "thirty": true,
	"forty": true, "fifty": true, "sixty": true, "seventy": true,
	"eighty": true, "ninety": true,
	"first": true, "second": true, "third": true, "fourth": true,
	"fifth": true, "sixth": true, "seventh": true, "eighth": true,
	"ninth": true, "tenth": true, "eleventh": true, "twelfth": true,
	"thirteenth": true, "fourteenth": true, "fifteenth": true,
	"sixteenth": true, "seventeenth": true, "eighteenth": true,
	"nineteenth": true, "twentieth": true, "thirtieth": true,
	"fortieth": true, "fiftieth": true, "sixtieth": true,
	"seventieth": true, "eightieth": true, "ninetieth": true,
}
