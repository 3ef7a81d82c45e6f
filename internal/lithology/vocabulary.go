package lithology

// Vocabulary tables are plain keyword→tag data so they can grow with agency
// submissions without touching the classifier. Adjective and plural forms
// map to the same canonical tag as the noun.

var materialVocabulary = map[string]string{
	"gravel":       "gravel",
	"gravels":      "gravel",
	"gravelly":     "gravel",
	"sand":         "sand",
	"sands":        "sand",
	"sandy":        "sand",
	"silt":         "silt",
	"silts":        "silt",
	"silty":        "silt",
	"clay":         "clay",
	"clays":        "clay",
	"clayey":       "clay",
	"loam":         "loam",
	"loamy":        "loam",
	"soil":         "soil",
	"topsoil":      "soil",
	"mud":          "mud",
	"muddy":        "mud",
	"peat":         "peat",
	"till":         "till",
	"caliche":      "caliche",
	"boulder":      "boulder",
	"boulders":     "boulder",
	"cobble":       "cobble",
	"cobbles":      "cobble",
	"rock":         "rock",
	"rocks":        "rock",
	"rocky":        "rock",
	"bedrock":      "bedrock",
	"stone":        "stone",
	"stones":       "stone",
	"sandstone":    "sandstone",
	"siltstone":    "siltstone",
	"mudstone":     "mudstone",
	"claystone":    "claystone",
	"limestone":    "limestone",
	"dolomite":     "dolomite",
	"shale":        "shale",
	"chalk":        "chalk",
	"gypsum":       "gypsum",
	"conglomerate": "conglomerate",
	"granite":      "granite",
	"basalt":       "basalt",
	"quartz":       "quartz",
	"quartzite":    "quartzite",
	"schist":       "schist",
	"gneiss":       "gneiss",
	"marl":         "marl",
	"lignite":      "lignite",
	"coal":         "coal",
}

var colorVocabulary = map[string]string{
	"brown":     "brown",
	"brownish":  "brown",
	"gray":      "gray",
	"grayish":   "gray",
	"grey":      "gray",
	"greyish":   "gray",
	"black":     "black",
	"blackish":  "black",
	"white":     "white",
	"whitish":   "white",
	"red":       "red",
	"reddish":   "red",
	"yellow":    "yellow",
	"yellowish": "yellow",
	"orange":    "orange",
	"blue":      "blue",
	"bluish":    "blue",
	"green":     "green",
	"greenish":  "green",
	"tan":       "tan",
	"pink":      "pink",
	"pinkish":   "pink",
	"purple":    "purple",
	"olive":     "olive",
	"buff":      "buff",
}
