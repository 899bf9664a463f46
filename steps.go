package articleflow

// ValidationType is the rule governing what completing a step requires.
type ValidationType string

// Validation policy constants.
const (
	// ValidationApprove requires no selection; validating only timestamps
	// the record.
	ValidationApprove ValidationType = "approve"

	// ValidationChoose requires a selection index into the numbered-list
	// parse of the step's raw output.
	ValidationChoose ValidationType = "choose"

	// ValidationChooseDual requires two independent selection indices, one
	// per candidate list (meta titles and meta descriptions).
	ValidationChooseDual ValidationType = "choose-dual"

	// ValidationEdit treats the free-form text itself as the artifact;
	// validating requires non-empty content.
	ValidationEdit ValidationType = "edit"
)

// StepDefinition describes one stage of the pipeline. Definitions are
// immutable and owned by the registry.
type StepDefinition struct {
	Number      int            `json:"number"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	Validation  ValidationType `json:"validationType"`

	// MaxTokens is the generation token budget. Zero means the step does
	// not invoke the text-generation provider.
	MaxTokens int `json:"maxTokens"`

	// Temperature is the sampling temperature for generation (0-1).
	Temperature float64 `json:"temperature"`

	// DependsOn lists step numbers whose validated output is required
	// before this step can generate or validate. Always strictly smaller
	// than Number, so the graph is a DAG by construction.
	DependsOn []int `json:"dependsOn"`

	// Instructions is the operator-facing guidance shown for the step.
	Instructions string `json:"userInstructions"`
}

// Step number constants for the fixed pipeline.
const (
	StepConfiguration   = 0
	StepTitles          = 1
	StepResearch        = 2
	StepQuestions       = 3
	StepIntentQuestions = 4
	StepPlan            = 5
	StepArticle         = 6
	StepOptimize        = 7
	StepIntroduction    = 8
	StepImageTitles     = 9
	StepImagePrompts    = 10
	StepImages          = 11
	StepAltTexts        = 12
	StepMeta            = 13
	StepStructuredData  = 14
	StepExport          = 15
)

// TerminalStep is the last step of the pipeline; validating it completes
// the project.
const TerminalStep = StepExport

// WorkflowSteps is the fixed step table. The pipeline is small and known at
// compile time, so it is expressed as a plain ordered slice rather than a
// dynamic graph.
var WorkflowSteps = []StepDefinition{
	{
		Number:       StepConfiguration,
		Name:         "Configuration",
		Slug:         "configuration",
		Description:  "Définir le mot-clé, le client et les intentions de recherche",
		Validation:   ValidationApprove,
		Instructions: "Vérifiez les paramètres du projet puis validez pour commencer.",
	},
	{
		Number:       StepTitles,
		Name:         "Génération de titres",
		Slug:         "titles",
		Description:  "Générer 10 titres SEO optimisés",
		Validation:   ValidationChoose,
		MaxTokens:    2048,
		Temperature:  0.8,
		DependsOn:    []int{StepConfiguration},
		Instructions: "Cliquez sur « Générer » puis sélectionnez le titre qui vous convient le mieux. Ce titre sera utilisé pour tout le reste du workflow.",
	},
	{
		Number:       StepResearch,
		Name:         "Recherche approfondie",
		Slug:         "research",
		Description:  "Créer une synthèse/wiki du sujet",
		Validation:   ValidationEdit,
		MaxTokens:    4096,
		Temperature:  0.5,
		DependsOn:    []int{StepTitles},
		Instructions: "Vérifiez la recherche générée. Vous pouvez modifier, ajouter ou supprimer des informations avant de valider.",
	},
	{
		Number:       StepQuestions,
		Name:         "Questions persona",
		Slug:         "questions",
		Description:  "Générer les questions que se pose le persona",
		Validation:   ValidationEdit,
		MaxTokens:    3072,
		Temperature:  0.7,
		DependsOn:    []int{StepTitles},
		Instructions: "Vérifiez que les questions correspondent bien au persona. Ajoutez ou supprimez des questions selon votre connaissance du public cible.",
	},
	{
		Number:       StepIntentQuestions,
		Name:         "Intentions vs Questions",
		Slug:         "intents-questions",
		Description:  "Croiser les intentions SERP avec les questions persona",
		Validation:   ValidationEdit,
		MaxTokens:    4096,
		Temperature:  0.6,
		DependsOn:    []int{StepQuestions},
		Instructions: "Vérifiez le croisement entre les intentions de recherche et les questions. Ajustez les priorités SEO si nécessaire.",
	},
	{
		Number:       StepPlan,
		Name:         "Plan MECE",
		Slug:         "plan",
		Description:  "Structurer le plan H1-H4 selon le principe MECE",
		Validation:   ValidationEdit,
		MaxTokens:    4096,
		Temperature:  0.6,
		DependsOn:    []int{StepResearch, StepIntentQuestions},
		Instructions: "C'est le squelette de votre article. Réorganisez les sections, ajoutez ou supprimez des parties. Un bon plan = un bon article.",
	},
	{
		Number:       StepArticle,
		Name:         "Rédaction de l'article",
		Slug:         "article",
		Description:  "Rédiger l'article complet à partir du plan",
		Validation:   ValidationEdit,
		MaxTokens:    8192,
		Temperature:  0.7,
		DependsOn:    []int{StepPlan, StepResearch},
		Instructions: "L'article est généré sans introduction (elle viendra à l'étape 8). Relisez et modifiez le contenu à votre convenance.",
	},
	{
		Number:       StepOptimize,
		Name:         "Optimisation SEO",
		Slug:         "optimize",
		Description:  "Optimiser l'article pour le référencement",
		Validation:   ValidationEdit,
		MaxTokens:    8192,
		Temperature:  0.4,
		DependsOn:    []int{StepArticle},
		Instructions: "Comparez l'article optimisé avec l'original. Vérifiez que l'optimisation n'a pas dénaturé le contenu.",
	},
	{
		Number:       StepIntroduction,
		Name:         "Introduction copywriting",
		Slug:         "introduction",
		Description:  "Générer 2 introductions optimisées",
		Validation:   ValidationChoose,
		MaxTokens:    2048,
		Temperature:  0.8,
		DependsOn:    []int{StepOptimize},
		Instructions: "Choisissez l'introduction qui accroche le mieux. Elle sera ajoutée en début d'article.",
	},
	{
		Number:       StepImageTitles,
		Name:         "Titres images",
		Slug:         "image-titles",
		Description:  "Créer les noms de fichiers SEO pour les images",
		Validation:   ValidationEdit,
		MaxTokens:    2048,
		Temperature:  0.5,
		DependsOn:    []int{StepOptimize},
		Instructions: "Vérifiez les noms de fichiers. Ils doivent contenir le mot-clé et décrire l'image attendue.",
	},
	{
		Number:       StepImagePrompts,
		Name:         "Prompts illustrations",
		Slug:         "image-prompts",
		Description:  "Générer les prompts pour la création d'images",
		Validation:   ValidationEdit,
		MaxTokens:    3072,
		Temperature:  0.7,
		DependsOn:    []int{StepImageTitles},
		Instructions: "Ajustez les prompts DALL-E si le style ou le contenu visuel ne correspond pas à vos attentes.",
	},
	{
		Number:       StepImages,
		Name:         "Génération images",
		Slug:         "images",
		Description:  "Générer les illustrations via DALL-E",
		Validation:   ValidationApprove,
		DependsOn:    []int{StepImagePrompts},
		Instructions: "Les images seront générées via DALL-E. Vous pourrez régénérer individuellement celles qui ne conviennent pas.",
	},
	{
		Number:       StepAltTexts,
		Name:         "Textes alternatifs",
		Slug:         "alt-texts",
		Description:  "Créer les balises alt pour les images",
		Validation:   ValidationEdit,
		MaxTokens:    2048,
		Temperature:  0.5,
		DependsOn:    []int{StepImageTitles},
		Instructions: "Les textes alt doivent décrire l'image tout en intégrant le mot-clé naturellement. Max 125 caractères chacun.",
	},
	{
		Number:       StepMeta,
		Name:         "Méta-données",
		Slug:         "meta",
		Description:  "Générer 5 titres et 5 méta-descriptions",
		Validation:   ValidationChooseDual,
		MaxTokens:    2048,
		Temperature:  0.7,
		DependsOn:    []int{StepOptimize},
		Instructions: "Choisissez un meta title (50-60 car.) et une meta description (150-160 car.) parmi les propositions.",
	},
	{
		Number:       StepStructuredData,
		Name:         "Données structurées",
		Slug:         "structured-data",
		Description:  "Générer le Schema.org JSON-LD",
		Validation:   ValidationEdit,
		MaxTokens:    3072,
		Temperature:  0.3,
		DependsOn:    []int{StepMeta},
		Instructions: "Vérifiez le JSON-LD généré. Il sera intégré dans le HTML de l'article pour les rich snippets Google.",
	},
	{
		Number:       StepExport,
		Name:         "Export",
		Slug:         "export",
		Description:  "Exporter l'article (WordPress, HTML, Markdown)",
		Validation:   ValidationApprove,
		DependsOn:    []int{StepOptimize, StepIntroduction, StepMeta, StepStructuredData},
		Instructions: "Choisissez le format d'export et téléchargez votre article finalisé.",
	},
}

// StepNumbers returns every registry step number in pipeline order.
// Projects seed one step record per entry.
func StepNumbers() []int {
	out := make([]int, len(WorkflowSteps))
	for i, s := range WorkflowSteps {
		out[i] = s.Number
	}
	return out
}

// StepByNumber returns the definition for a step number.
func StepByNumber(number int) (StepDefinition, bool) {
	for _, s := range WorkflowSteps {
		if s.Number == number {
			return s, true
		}
	}
	return StepDefinition{}, false
}

// StepBySlug returns the definition for a step slug.
func StepBySlug(slug string) (StepDefinition, bool) {
	for _, s := range WorkflowSteps {
		if s.Slug == slug {
			return s, true
		}
	}
	return StepDefinition{}, false
}

// Generable reports whether the step invokes the text-generation provider.
func (s StepDefinition) Generable() bool {
	return s.MaxTokens > 0
}
