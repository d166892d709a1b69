package agent

import (
	"context"
	"fmt"
	"os"

	"github.com/bricar/minimarket"
	"github.com/bricar/minimarket/docs"
	"github.com/bricar/minimarket/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Canned user-facing messages. The assistant speaks Spanish, so its
// failure modes do too.
const (
	// NotConfiguredMsg is shown when no API key is available.
	NotConfiguredMsg = "API Key no configurada. Define la variable de entorno GEMINI_API_KEY para usar el asistente."
	// ErrorMsg is shown when a model call fails.
	ErrorMsg = "Ocurrió un error al consultar a la IA. Inténtalo de nuevo más tarde."
)

// Configured reports whether an API key is present in the environment.
func Configured() bool {
	return os.Getenv("GEMINI_API_KEY") != "" || os.Getenv("GOOGLE_API_KEY") != ""
}

// NewClient creates the Gemini client from the ambient configuration.
func NewClient(ctx context.Context) (*genai.Client, error) {
	return genai.NewClient(ctx, nil)
}

// NewShopkeeper builds the advisor that answers questions about one
// store. It sees a snapshot taken now, and can call read-only tools for
// the inventory, the sales reports and the open credit list.
func NewShopkeeper(store *minimarket.Store) *Advisor {
	tools := []Function{inventoryFunc(store), reportFunc(store), debtsFunc(store)}

	instruction := fmt.Sprintf(`
	Eres el asistente de ventas de una bodega venezolana que opera en dos
	monedas: dólares (USD) y bolívares (BsF). Responde siempre en español,
	de forma breve y concreta, como a un bodeguero con prisa.

	Los precios del catálogo están en USD; la tasa del día convierte a BsF.
	Cada venta guarda su propia tasa congelada, así que los totales
	históricos no cambian cuando cambia la tasa. Las ventas a crédito
	("fiao") quedan abiertas hasta que el cliente paga.

	Usa las herramientas disponibles cuando necesites cifras exactas.
	Este es el estado de la tienda al iniciar la conversación:

	%s`, store.Snapshot().JSON())

	return &Advisor{
		Name:      "Shopkeeper",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
		Library: NewLibrary(tools),
	}
}

// AskOnce answers a single question about the store. It never returns a
// raw error to show the user: failures collapse to the canned messages.
func AskOnce(ctx context.Context, store *minimarket.Store, question string) string {
	if !Configured() {
		return NotConfiguredMsg
	}
	client, err := NewClient(ctx)
	if err != nil {
		return NotConfiguredMsg
	}
	advisor := NewShopkeeper(store)
	if err := advisor.Start(ctx, client); err != nil {
		return ErrorMsg
	}
	content, err := advisor.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return ErrorMsg
	}
	return content.Parts[0].Text
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func inventoryFunc(store *minimarket.Store) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Inventario",
			Description: "Lista el catálogo completo con precios en USD y BsF a la tasa del día, y las existencias.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of every product with prices in both currencies and stock levels.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			out := renderer.ProductsMarkdown(store.Catalog().Products(), store.Rate())
			return outputResponse(id, "Inventario", out)
		},
	}
}

func reportFunc(store *minimarket.Store) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Reporte",
			Description: "Reporte de ventas de un día, semana o mes: totales en ambas monedas, desglose por método de pago y productos más vendidos.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type: genai.TypeString,
						Description: `The day inside the reporting window. Today is the default.
						Otherwise it uses a flexible date format based on YYYY-MM-DD:

						` + must(docs.GetTopic("dates")),
					},
					"period": {
						Type:        genai.TypeString,
						Description: "One of: day, week, month. Default is day.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown sales report for the requested window.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			day, err := parseDate(args)
			if err != nil {
				return errorResponse(id, "Reporte", err)
			}
			period, err := parsePeriod(args)
			if err != nil {
				return errorResponse(id, "Reporte", err)
			}
			report := minimarket.NewSalesReport(store.Ledger(), period.Range(day))
			return outputResponse(id, "Reporte", renderer.ReportMarkdown(report))
		},
	}
}

func debtsFunc(store *minimarket.Store) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Deudas",
			Description: "Lista las ventas a crédito (fiao) aún no pagadas, con cliente y monto en ambas monedas.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of open credit sales.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger := store.Ledger()
			usd, bsf := ledger.TotalOpen()
			out := renderer.CreditsMarkdown(ledger.OpenDebts(), usd, bsf)
			return outputResponse(id, "Deudas", out)
		},
	}
}

func parseDate(args map[string]any) (minimarket.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return minimarket.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return minimarket.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	day, err := minimarket.ParseDate(sdate)
	if err != nil {
		return minimarket.Today(), fmt.Errorf("argument 'date' must be a valid date, got %q. Below is the doc about the date format\n\n%s", sdate, must(docs.GetTopic("dates")))
	}
	return day, nil
}

func parsePeriod(args map[string]any) (minimarket.Period, error) {
	iperiod, hasPeriod := args["period"]
	if !hasPeriod {
		return minimarket.Daily, nil
	}
	speriod, ok := iperiod.(string)
	if !ok {
		return minimarket.Daily, fmt.Errorf("argument 'period' is not a string as expected but %T", iperiod)
	}
	return minimarket.ParsePeriod(speriod)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
