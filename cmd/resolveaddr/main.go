// Command resolveaddr resolves Vietnamese addresses from the command
// line or from stdin (one address per line) into ward/district/province
// triples.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/vnaddress/resolver/internal/config"
	"github.com/vnaddress/resolver/internal/gazetteer"
	"github.com/vnaddress/resolver/internal/gazetteer/fuzzyindex"
	"github.com/vnaddress/resolver/internal/loader"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	detail := flag.Bool("detail", false, "print per-slot score and confidence")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	logger := initLogger(cfg.Env)
	defer logger.Sync()

	resolver, err := buildResolver(cfg, logger)
	if err != nil {
		logger.Fatal("cannot build resolver", zap.Error(err))
	}

	cached, err := gazetteer.NewCachedResolver(resolver, cfg.CacheSize, logger)
	if err != nil {
		logger.Fatal("cannot build cache", zap.Error(err))
	}

	args := flag.Args()
	if len(args) > 0 {
		for _, input := range args {
			printResult(resolver, cached, input, *detail)
		}
		return
	}

	logger.Info("reading addresses from stdin, one per line")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		printResult(resolver, cached, line, *detail)
	}
	if err := scanner.Err(); err != nil {
		logger.Fatal("error reading stdin", zap.Error(err))
	}
}

func printResult(resolver *gazetteer.Resolver, cached *gazetteer.CachedResolver, input string, detail bool) {
	if detail {
		ward, district, province := resolver.ResolveDetail(input)
		fmt.Printf("%s\t| ward=%q(%.2f/%.2f) district=%q(%.2f/%.2f) province=%q(%.2f/%.2f)\n",
			input,
			ward.Original, ward.Score, ward.Confidence,
			district.Original, district.Score, district.Confidence,
			province.Original, province.Score, province.Confidence)
		return
	}
	t := cached.Resolve(input)
	fmt.Printf("%s\t| %s | %s | %s\n", input, t.Ward, t.District, t.Province)
}

func buildResolver(cfg config.Config, logger *zap.Logger) (*gazetteer.Resolver, error) {
	provinces, err := loader.LoadNames(cfg.ProvinceFile)
	if err != nil {
		return nil, err
	}
	districts, err := loader.LoadNames(cfg.DistrictFile)
	if err != nil {
		return nil, err
	}
	wards, err := loader.LoadNames(cfg.WardFile)
	if err != nil {
		return nil, err
	}
	records, err := loader.LoadReferenceRecords(cfg.ReferenceFile)
	if err != nil {
		return nil, err
	}

	kind := fuzzyindex.KindBKTree
	if cfg.FuzzyIndexKind == "trie" {
		kind = fuzzyindex.KindTrie
	}

	return gazetteer.NewResolver(provinces, districts, wards, records,
		gazetteer.WithBias(cfg.Bias),
		gazetteer.WithFuzzyIndexKind(kind),
		gazetteer.WithLogger(logger),
	), nil
}

func initLogger(env string) *zap.Logger {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	return logger
}
