package marketplace

import (
	"fmt"
	"hash/fnv"
	"regexp"
)

var (
	nameRe  = regexp.MustCompile(`(?i)(?:name|named)\s+([a-zA-Z0-9_]+)`)
	priceRe = regexp.MustCompile(`(?i)(?:price|cost)\s+(\d+)`)
)

var generatedImages = []string{
	"/assets/generated/cyberpunk_warrior.png",
	"/assets/generated/ethereal_landscape.png",
	"/assets/generated/cosmic_entity.png",
	"/assets/generated/neural_network.png",
}

// GenerateResult is the outcome of a generation request: a picked image
// plus the name and price extracted from the free-form prompt.
type GenerateResult struct {
	ImageURL       string `json:"imageUrl"`
	EnhancedPrompt string `json:"enhancedPrompt"`
	ExtractedName  string `json:"extractedName"`
	ExtractedPrice string `json:"extractedPrice"`
	AgentName      string `json:"agentName"`
}

// GenerateArt extracts listing metadata from a natural-language prompt and
// selects a generated image. Extraction looks for "name <word>" and
// "price <number>" phrases; absent those, deterministic defaults derived
// from the prompt are used.
func GenerateArt(prompt string) GenerateResult {
	h := fnv.New32a()
	h.Write([]byte(prompt))
	seed := h.Sum32()

	name := fmt.Sprintf("Astra Art #%d", seed%1000)
	if m := nameRe.FindStringSubmatch(prompt); m != nil {
		name = m[1]
	}

	price := "100"
	if m := priceRe.FindStringSubmatch(prompt); m != nil {
		price = m[1]
	}

	return GenerateResult{
		ImageURL:       generatedImages[seed%uint32(len(generatedImages))],
		EnhancedPrompt: fmt.Sprintf("A hyper-realistic, cinematic masterpiece of %s, trending on ArtStation, 8k resolution, detailed textures, ethereal lighting, volumetric fog, masterpiece composition.", prompt),
		ExtractedName:  name,
		ExtractedPrice: price,
		AgentName:      "Astra-Neural-v1",
	}
}

// MetadataAttribute is a single trait in an NFT metadata document.
type MetadataAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Metadata is the token metadata document referenced by a token_uri.
type Metadata struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Attributes  []MetadataAttribute `json:"attributes"`
	Compiler    string              `json:"compiler"`
}

// BuildMetadata assembles the metadata document for a generated piece.
func BuildMetadata(name, description, aiPrompt, modelVersion, imageURL string) Metadata {
	if imageURL == "" {
		imageURL = "https://placeholder.com/art.png"
	}
	if modelVersion == "" {
		modelVersion = "v1.0"
	}
	return Metadata{
		Name:        name,
		Description: description,
		Image:       imageURL,
		Attributes: []MetadataAttribute{
			{TraitType: "AI Prompt", Value: aiPrompt},
			{TraitType: "Model Version", Value: modelVersion},
			{TraitType: "Platform", Value: "AstraNode Art"},
		},
		Compiler: "AstraNode AI Engine",
	}
}
