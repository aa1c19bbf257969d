package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"sieve"
	nt "sieve/entity"
	"sieve/store/duck"
	"sieve/store/memo"
	"sieve/table"
	"sieve/util"
)

const (
	cfgPath = "sieve.yaml"
	logPath = "sieve.log"
	width   = 100
)

//go:embed sample.yaml
var sample []byte

type options struct {
	config string
	file   string
	field  string
	term   string
	print  bool
	sample bool
}

// loadingStore is a store that can be closed after loading
type loadingStore interface {
	sieve.Store
	Close()
}

type memoStore struct {
	*memo.Memo
}

func (ms memoStore) Close() {}

func main() {

	opt := options{}
	flag.StringVar(&opt.config, "config", cfgPath, "yaml config path")
	flag.StringVar(&opt.file, "file", "", "collection to browse, newline delimited json or a yaml list")
	flag.StringVar(&opt.field, "field", "", "field searched, overrides config")
	flag.StringVar(&opt.term, "term", "", "search term for --print")
	flag.BoolVar(&opt.print, "print", false, "print one page and exit")
	flag.BoolVar(&opt.sample, "sample", false, "write a sample config and exit")
	flag.Parse()

	if opt.sample {
		check(util.SampleConfig(sample, opt.config, 0644))
		return
	}

	logFile, err := util.OpenLog(logPath, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v, not logging\n", err)
	}
	defer util.CloseLog(logFile)

	lgr := (&sabot.Config{}).New(logFile)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = lgr.WithFields(ctx, "run_id", os.Getpid())

	cfg := &sieve.Config{}
	check(util.LoadConfig(cfg, opt.config))
	if opt.field != "" {
		cfg.SearchField = opt.field
	}

	store, err := openStore(ctx, opt.file, lgr)
	check(err)
	defer store.Close()

	if opt.print {
		check(printPage(cfg, store, opt.term))
		return
	}

	model, err := sieve.NewModel(ctx, cfg, store, lgr)
	check(err)
	defer model.Close()

	lgr.Info(ctx, "starting", "file", opt.file, "field", cfg.SearchField)
	_, err = tea.NewProgram(model).Run()
	if err != nil {
		lgr.Error(ctx, "program exited", err)
	}
	check(err)
}

func openStore(ctx context.Context, path string, lgr nt.Logger) (store loadingStore, err error) {

	if path == "" {
		err = errors.Errorf("--file is required")
		return
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		store = memoStore{memo.New(path, lgr)}
	default:
		store, err = duck.New(path, lgr)
		if err != nil {
			return
		}
	}

	err = store.Load(ctx)
	if err != nil {
		store.Close()
	}
	return
}

func printPage(cfg *sieve.Config, store sieve.Store, term string) (err error) {

	pipeline, err := cfg.NewPipeline()
	if err != nil {
		return
	}

	items, err := store.Items()
	if err != nil {
		return
	}

	filters := slices.Clone(cfg.Filters)
	filters = append(filters, sieve.Search(cfg.SearchField, term)...)
	result := pipeline.Run(items, sieve.Query{Filters: filters})

	size := cfg.PageSize
	if size < 1 {
		size = sieve.DefaultPageSize
	}
	pnl := table.New(cfg.Visible(), size).SetItems(result.Items)

	fmt.Println(pnl.View())
	fmt.Println(sieve.RenderFooter(result, store.Name(), width))
	return
}

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %+v\n", err)
		os.Exit(1)
	}
}
