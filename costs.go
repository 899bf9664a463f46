package articleflow

// Per-1K-token prices in USD.
type modelPrice struct {
	input  float64
	output float64
}

var modelPrices = map[string]modelPrice{
	"claude-sonnet-4-20250514":  {input: 0.003, output: 0.015},
	"claude-haiku-3-5-20241022": {input: 0.001, output: 0.005},
}

// defaultPrice applies to models missing from the table.
var defaultPrice = modelPrice{input: 0.003, output: 0.015}

// CompletionCost returns the USD cost of one text completion.
func CompletionCost(model string, inputTokens, outputTokens int) float64 {
	price, ok := modelPrices[model]
	if !ok {
		price = defaultPrice
	}
	return float64(inputTokens)/1000*price.input + float64(outputTokens)/1000*price.output
}

// Image generation prices in USD per image.
var imagePrices = map[string]float64{
	"standard": 0.04,
	"hd":       0.08,
}

// ImageCost returns the USD cost of one generated image. Unknown
// qualities price as standard.
func ImageCost(quality string) float64 {
	if price, ok := imagePrices[quality]; ok {
		return price
	}
	return imagePrices["standard"]
}
