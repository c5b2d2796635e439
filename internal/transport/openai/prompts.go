package openai

import (
	"fmt"
	"strings"

	"github.com/storelens/shopdex/internal/domain/criteria"
)

func categoriesPrompt(query string, available []string) string {
	list := "No categories available"
	if len(available) > 0 {
		list = strings.Join(available, ", ")
	}

	return fmt.Sprintf(`You are a category extractor for an e-commerce search system.
User Query: "%s"

Available Categories: [%s]

TASK: Extract categories the user wants to INCLUDE and EXCLUDE from search results.

RULES:
1. INCLUSION patterns - user WANTS these categories:
   - Direct mention: "laptop", "smartphone", "headphones"
   - Synonyms: "phone" -> Smartphones, "notebook" -> Laptops, "earbuds" -> Headphones

2. EXCLUSION patterns - user does NOT want these categories:
   - "but not [category]"
   - "except [category]"
   - "without [category]"
   - "no [category]"
   - "not [category]"
   - "everything but [category]"

3. STRICT MATCHING: All extracted categories MUST be from the available list: [%s]
4. Map user terms to EXACT category names from the list intelligently.
5. A category cannot be in both include and exclude lists.
6. If no categories are mentioned or match, return empty arrays.

EXAMPLES:
- "gaming laptop" -> categories: ["Laptops"], excludeCategories: []
- "electronics but not phones" -> categories: [], excludeCategories: ["Smartphones"]
- "laptop or tablet" -> categories: ["Laptops", "Tablets"], excludeCategories: []
- "headphones except wireless" -> categories: ["Headphones"], excludeCategories: []
`, query, list, list)
}

func brandsPrompt(query string) string {
	return fmt.Sprintf(`You are a brand extractor for an e-commerce search system.
User Query: "%s"

TASK: Extract brands the user wants to INCLUDE and EXCLUDE from search results.

RULES:
1. INCLUSION patterns - user WANTS these brands:
   - Direct mention: "Nike shoes", "Apple laptop"
   - Product names that map to brands: "MacBook" -> Apple, "Galaxy" -> Samsung, "ThinkPad" -> Lenovo, "iPhone" -> Apple, "Surface" -> Microsoft, "PlayStation" -> Sony, "Xbox" -> Microsoft
   - Model names: "Air Jordan" -> Nike, "Yeezy" -> Adidas

2. EXCLUSION patterns - user does NOT want these brands:
   - "but not [brand]"
   - "except [brand]"
   - "without [brand]"
   - "no [brand]"
   - "everything except [brand]"
   - "any brand but [brand]"
   - "not [brand]"

3. Extract ALL brands mentioned, even if you're not sure they exist in the store.
4. Use proper brand capitalization (e.g., "Apple" not "apple", "Samsung" not "SAMSUNG").
5. A brand cannot be in both include and exclude lists.
6. If no brands are mentioned, return empty arrays.

EXAMPLES:
- "Nike running shoes" -> brands: ["Nike"], excludeBrands: []
- "shoes but not Nike" -> brands: [], excludeBrands: ["Nike"]
- "Apple or Samsung phone" -> brands: ["Apple", "Samsung"], excludeBrands: []
- "laptop except Dell and HP" -> brands: [], excludeBrands: ["Dell", "HP"]
- "MacBook Pro" -> brands: ["Apple"], excludeBrands: []
- "Galaxy S24" -> brands: ["Samsung"], excludeBrands: []
- "cheap laptop" -> brands: [], excludeBrands: [] (no brand specified)
`, query)
}

func priceSortingPrompt(query string) string {
	return fmt.Sprintf(`You are a Price and Sorting extractor.
User Query: "%s"

RULES:
1. EXTRACTING PRICE:
   - Only extract specific numbers (e.g., "$500", "under 100", "between 100 and 500").
   - NEVER guess or hallucinate a price range if no numbers are present.
   - If no numbers are found, 'price' MUST be null.
   - Use operator 'lt' for "under/below/less than", 'gt' for "over/above/more than".
   - Use operator 'range' for "between X and Y" with amount as min and maxAmount as max.
   - Use operator 'eq' for exact price matches.

2. EXTRACTING SORTING:
   - If user says "cheap", "budget", "lowest price", "affordable" -> set sorting: { field: "price", order: "asc" }.
   - If user says "expensive", "luxury", "premium", "high-end" -> set sorting: { field: "price", order: "desc" }.
   - If no sorting preference is expressed, sorting MUST be null.
`, query)
}

func attributeMappingPrompt(query string, attrs []criteria.AttributeMap) string {
	var b strings.Builder
	for _, attr := range attrs {
		fmt.Fprintf(&b, "- %s: [%s]\n", attr.Key, strings.Join(attr.Values, ", "))
	}

	return fmt.Sprintf(`You are a product attribute matcher for an e-commerce search system.

User Query: "%s"

Available product attributes and their possible values:
%s
TASK: Identify which attribute values best match what the user is looking for.

RULES:
1. ONLY select values that are EXPLICITLY mentioned or STRONGLY IMPLIED by the user query.
2. Do NOT guess or assume preferences the user didn't express.
3. Map user language to exact attribute values intelligently:
   - "fast" or "performance" -> high RAM/CPU/speed values
   - "large screen" -> bigger screen size values
   - "lightweight" or "portable" -> lower weight values
   - Color names -> matching color values
   - Size preferences -> matching size values
4. If an attribute has no clear mapping from the user query, do NOT include it.
5. Assign confidence levels:
   - "high": User explicitly mentioned this attribute or a direct synonym
   - "medium": User implied this through related terms
   - "low": Weak or speculative connection (these will be filtered out)
6. Be conservative - it's better to miss a filter than to apply an incorrect one.

IMPORTANT: Only return mappings where you have medium or high confidence.
`, query, b.String())
}
