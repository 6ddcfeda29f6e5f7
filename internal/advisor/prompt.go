package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"ssshep/expensepro/internal/currencyutils"
	"ssshep/expensepro/internal/ledger"
)

// MaxPromptTransactions caps how many ledger lines are sent to the model.
const MaxPromptTransactions = 200

// BuildPrompt renders the analysis prompt for req.
func BuildPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("You are a financial assistant reviewing a small business expense ledger kept in Indian rupees.\n")
	b.WriteString("Analyse the spending below and reply with JSON only, using this shape:\n")
	b.WriteString(`{"summary": "two or three sentences", "insights": ["..."], "recommendations": ["..."]}`)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Budget: %s\n", currencyutils.FormatINR(req.Budget))
	fmt.Fprintf(&b, "Total spent: %s\n", currencyutils.FormatINR(req.TotalSpent))
	fmt.Fprintf(&b, "Remaining balance: %s\n", currencyutils.FormatINR(req.Remaining()))
	fmt.Fprintf(&b, "Travel charges: %s\n", currencyutils.FormatINR(req.TravelAmount))
	fmt.Fprintf(&b, "Transactions: %d\n", len(req.Transactions))

	writeTop(&b, "Top spending by purpose", ledger.TopSpendingBy(req.Transactions, ledger.ByPurpose))
	writeTop(&b, "Top spending by customer", ledger.TopSpendingBy(req.Transactions, ledger.ByCustomer))

	b.WriteString("\nLedger (date | customer | shop | purpose | bill type | amount):\n")
	lines := req.Transactions
	if ordered, err := ledger.SortForReporting(lines); err == nil {
		lines = ordered
	}
	if len(lines) > MaxPromptTransactions {
		fmt.Fprintf(&b, "(showing the latest %d of %d)\n", MaxPromptTransactions, len(lines))
		lines = lines[len(lines)-MaxPromptTransactions:]
	}
	for _, tx := range lines {
		fmt.Fprintf(&b, "%s | %s | %s | %s | %s | %s\n",
			tx.Date, tx.CustomerName, tx.ShopOrNA(), tx.Purpose, tx.BillType.Label(), currencyutils.FormatAmount(tx.AmountGiven))
	}
	return b.String()
}

func writeTop(b *strings.Builder, title string, entries []ledger.Spending) {
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, e := range entries {
		fmt.Fprintf(b, "- %s: %s\n", e.Name, currencyutils.FormatINR(e.Amount))
	}
}

// ParseAdvice decodes a model reply. Markdown code fences are stripped; a
// reply that is not the expected JSON becomes the Summary as-is.
func ParseAdvice(reply string) Advice {
	text := stripCodeFence(reply)

	var advice Advice
	if err := json.Unmarshal([]byte(text), &advice); err != nil || (advice.Summary == "" && len(advice.Insights) == 0 && len(advice.Recommendations) == 0) {
		return Advice{Summary: strings.TrimSpace(reply)}
	}
	return advice
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
