package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/itemquery/am"
	"github.com/teranos/itemquery/display"
	"github.com/teranos/itemquery/errors"
	"github.com/teranos/itemquery/logger"
	"github.com/teranos/itemquery/query/parser"
	"github.com/teranos/itemquery/query/predicate"
	"github.com/teranos/itemquery/query/token"
	"github.com/teranos/itemquery/translation"
)

var (
	queryLine      string
	querySplit     string
	parseUseTokens bool
)

const queryArgsHelp = `
Arguments are taken as the game would pass them: a quoted phrase split by
spaces is rejoined, "(" and ")" are split off, and 12, 1:30 and * are
integers. Put -- before arguments that start with a dash.`

// TokensCmd represents the tokens command
var TokensCmd = &cobra.Command{
	Use:   "tokens [ARGS...]",
	Short: "Show the token stream of a query",
	Long: `Show the tokens an argument array is rebuilt into.
` + queryArgsHelp + `

Examples:
  itemquery tokens '"ancient' 'sword"' '(diamond' 'ench' '5)'
  itemquery tokens --line '"ancient sword" (diamond ench 5)'`,
	RunE: runTokens,
}

// ParseCmd represents the parse command
var ParseCmd = &cobra.Command{
	Use:   "parse [ARGS...]",
	Short: "Parse a query into item predicates",
	Long: `Parse a query and print the predicates it compiles to.

Search patterns are matched against the configured catalog by syllables:
"dia-sw" finds "Diamond Sword". A "?" syllable makes a material search
match every material containing the other syllables.
` + queryArgsHelp + `

Examples:
  itemquery parse dia-sw sharp 5
  itemquery parse --tokens speed 1 1:30 '"potion of haste"'`,
	RunE: runParse,
}

func init() {
	for _, cmd := range []*cobra.Command{TokensCmd, ParseCmd, MatchCmd} {
		cmd.Flags().StringVar(&queryLine, "line", "", "Read the query from a single raw line instead of arguments")
		cmd.Flags().StringVar(&querySplit, "split", SplitGame, "How --line is split: game (single spaces) or shell")
	}
	ParseCmd.Flags().BoolVar(&parseUseTokens, "tokens", false, "Print search keys as typed instead of catalog labels")
}

func runTokens(cmd *cobra.Command, args []string) error {
	args, err := queryArgs(args, queryLine, querySplit)
	if err != nil {
		return err
	}

	tokens, err := parser.ParseTokens(args)
	if err != nil {
		return queryFailure(err, args, nil, 0)
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), tokenViews(tokens))
	}
	return printTokens(cmd.OutOrStdout(), args, tokens)
}

func runParse(cmd *cobra.Command, args []string) error {
	args, err := queryArgs(args, queryLine, querySplit)
	if err != nil {
		return err
	}

	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	registry, err := openRegistry(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if err := traceQuery(cmd.ErrOrStderr(), verbosity(cmd), args, registry); err != nil {
		return err
	}

	predicates, err := parseQuery(cmd.Context(), args, registry)
	if err != nil {
		return queryFailure(err, args, registry, cfg.Parser.SuggestionLimit)
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), newQueryView(predicates))
	}
	return printPredicates(cmd.OutOrStdout(), predicates, parseUseTokens)
}

// parseQuery runs both parse stages and logs the outcome under a fresh request ID
func parseQuery(ctx context.Context, args []string, registry parser.Registry) (predicate.Conjunction, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithComponent(logger.WithRequestID(ctx, uuid.NewString()), "parser")
	log := logger.LoggerFromContext(ctx)

	start := time.Now()
	predicates, err := parser.Parse(args, registry)
	if err != nil {
		log.Debugw("Parse failed",
			logger.FieldQuery, quoteArgs(args),
			logger.FieldError, err)
		return nil, err
	}

	log.Debugw("Query parsed",
		logger.FieldQuery, quoteArgs(args),
		logger.FieldPredicates, len(predicates),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return predicate.Conjunction(predicates), nil
}

// verbosity returns the global -v count
func verbosity(cmd *cobra.Command) int {
	v, _ := cmd.Flags().GetCount("verbose")
	return v
}

// traceQuery prints the token stream at -vv and, at -vvv, the raw registry
// result of every search pattern. Tokenizer errors are left to the parse.
func traceQuery(w io.Writer, level int, args []string, registry *translation.Registry) error {
	if !logger.ShouldOutput(level, logger.OutputTokens) {
		return nil
	}
	tokens, err := parser.ParseTokens(args)
	if err != nil {
		return nil
	}

	fmt.Fprintf(w, "[%s]\n", logger.CategoryName(logger.OutputTokens))
	if err := printTokens(w, args, tokens); err != nil {
		return err
	}

	if !logger.ShouldOutput(level, logger.OutputSearchResults) {
		return nil
	}
	for _, t := range tokens {
		search, ok := t.(*token.UnquotedString)
		if !ok || search.Value == "" {
			continue
		}
		fmt.Fprintf(w, "\n[%s]\n", logger.CategoryName(logger.OutputSearchResults))
		if err := printSearch(w, registry, search.Value, 0); err != nil {
			return err
		}
	}
	return nil
}

type tokenView struct {
	Argument int    `json:"argument"`
	Kind     string `json:"kind"`
	Token    string `json:"token"`
}

func tokenViews(tokens []token.Token) []tokenView {
	views := make([]tokenView, 0, len(tokens))
	for _, t := range tokens {
		views = append(views, tokenView{Argument: t.ArgumentIndex(), Kind: tokenKind(t), Token: t.Stringify()})
	}
	return views
}

type predicateView struct {
	Kind  string `json:"kind"`
	Typed string `json:"typed"`
	Label string `json:"label"`
}

type queryView struct {
	Typed      string          `json:"typed"`
	Canonical  string          `json:"canonical"`
	Predicates []predicateView `json:"predicates"`
}

func newQueryView(predicates predicate.Conjunction) queryView {
	view := queryView{
		Typed:      predicates.Stringify(true),
		Canonical:  predicates.Stringify(false),
		Predicates: make([]predicateView, 0, len(predicates)),
	}
	for _, p := range predicates {
		view.Predicates = append(view.Predicates, predicateView{
			Kind:  predicateKind(p),
			Typed: p.Stringify(true),
			Label: p.Stringify(false),
		})
	}
	return view
}

func printTokens(w io.Writer, args []string, tokens []token.Token) error {
	if len(tokens) == 0 {
		fmt.Fprintln(w, "No tokens")
		return nil
	}

	data := pterm.TableData{{"#", "Arg", "Kind", "Token"}}
	for i, t := range tokens {
		data = append(data, []string{
			strconv.Itoa(i),
			strconv.Itoa(t.ArgumentIndex() + 1),
			tokenKind(t),
			t.Stringify(),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render tokens")
	}

	fmt.Fprintf(w, "Arguments: %s\n\n%s\n", quoteArgs(args), table)
	return nil
}

func tokenKind(t token.Token) string {
	switch v := t.(type) {
	case *token.Parenthesis:
		if v.IsOpening {
			return "open"
		}
		return "close"
	case *token.QuotedString:
		return "quoted"
	case *token.UnquotedString:
		if v.Value == "" {
			return "empty"
		}
		return "unquoted"
	case *token.Integer:
		switch {
		case v.IsWildcard():
			return "wildcard"
		case v.WasTimeNotation:
			return "time"
		default:
			return "integer"
		}
	default:
		return fmt.Sprintf("%T", t)
	}
}

func printPredicates(w io.Writer, predicates predicate.Conjunction, useTokens bool) error {
	if len(predicates) == 0 {
		fmt.Fprintln(w, "Empty query (matches every item)")
		return nil
	}

	data := pterm.TableData{{"#", "Kind", "Predicate"}}
	for i, p := range predicates {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			predicateKind(p),
			p.Stringify(useTokens),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render predicates")
	}

	fmt.Fprintln(w, table)
	fmt.Fprintf(w, "\nQuery: %s\n", predicates.Stringify(useTokens))
	return nil
}

func predicateKind(p predicate.ItemPredicate) string {
	switch v := p.(type) {
	case *predicate.TextSearch:
		return "text"
	case *predicate.Material:
		if v.IsWildcard() {
			return string(translation.CategoryMaterial) + " (set)"
		}
		return string(translation.CategoryMaterial)
	case *predicate.Enchantment:
		return string(translation.CategoryEnchantment)
	case *predicate.PotionEffect:
		return string(translation.CategoryPotionEffect)
	case *predicate.Deterioration:
		return string(translation.CategoryDeterioration)
	case *predicate.MusicInstrument:
		return string(translation.CategoryMusicInstrument)
	default:
		return fmt.Sprintf("%T", p)
	}
}
