package catalog

// CategoryUnknown is the fallback bucket for names missing from the table.
const CategoryUnknown = "기타"

// Classifier assigns a category to a canonical ingredient name via table
// lookup. The table is injected at construction; the classifier itself is
// stateless and safe for concurrent use.
type Classifier struct {
	categories map[string]string
}

func NewClassifier(categories map[string]string) *Classifier {
	if categories == nil {
		categories = DefaultCategoryTable()
	}
	return &Classifier{categories: categories}
}

func (c *Classifier) Classify(canonicalName string) string {
	if category, ok := c.categories[canonicalName]; ok {
		return category
	}
	return CategoryUnknown
}

// DefaultCategoryTable covers the common Korean home-cooking ingredients.
func DefaultCategoryTable() map[string]string {
	return map[string]string{
		"양파":   "채소",
		"파":    "채소",
		"대파":   "채소",
		"마늘":   "채소",
		"감자":   "채소",
		"당근":   "채소",
		"애호박":  "채소",
		"고추":   "채소",
		"청양고추": "채소",
		"배추":   "채소",
		"무":    "채소",
		"버섯":   "채소",
		"콩나물":  "채소",
		"시금치":  "채소",
		"돼지고기": "육류",
		"소고기":  "육류",
		"닭고기":  "육류",
		"삼겹살":  "육류",
		"달걀":   "계란/유제품",
		"우유":   "계란/유제품",
		"치즈":   "계란/유제품",
		"버터":   "계란/유제품",
		"고등어":  "수산물",
		"오징어":  "수산물",
		"새우":   "수산물",
		"멸치":   "수산물",
		"두부":   "가공식품",
		"어묵":   "가공식품",
		"라면":   "가공식품",
		"소면":   "면/곡물",
		"밀가루":  "면/곡물",
		"쌀":    "면/곡물",
		"소금":   "양념",
		"설탕":   "양념",
		"후춧가루": "양념",
		"고춧가루": "양념",
		"고추장":  "양념",
		"된장":   "양념",
		"간장":   "양념",
		"국간장":  "양념",
		"식용유":  "양념",
		"참기름":  "양념",
		"들기름":  "양념",
		"식초":   "양념",
		"맛술":   "양념",
		"물엿":   "양념",
	}
}
