package resolve

// placeAliases maps folded filename tokens to their display form. Filename
// tokens are plain ASCII; the catalog shows the accented names. Multi-word
// keys are joined with single spaces.
var placeAliases = map[string]string{
	"alesund":        "Ålesund",
	"bodo":           "Bodø",
	"bronnoysund":    "Brønnøysund",
	"floro":          "Florø",
	"honningsvag":    "Honningsvåg",
	"mo i rana":      "Mo i Rana",
	"rorvik":         "Rørvik",
	"tromso":         "Tromsø",
	"vadso":          "Vadsø",
	"nesna":          "Nesna",
	"kristiansund n": "Kristiansund N",
}
