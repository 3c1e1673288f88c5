package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/detoxlab/detox/bayes"
	"github.com/detoxlab/detox/cleaner"
	"github.com/detoxlab/detox/corpus"
	"github.com/detoxlab/detox/db"
	"github.com/detoxlab/detox/labels"
	"github.com/detoxlab/detox/metrics"
	"github.com/detoxlab/detox/svm"
	"github.com/detoxlab/detox/vectorizer"
)

const (
	DEFAULT_MIN_YEAR = 2003
	DEFAULT_RATIO    = 0.7
	DEFAULT_SEED     = 1234
)

// Ad-hoc probes run after every training pass as a smoke check on the
// fitted model's polarity.
var probes = []string{
	"Thanks for your contribution, you did a great job!",
	"People as stupid as you should not edit Wikipedia!",
	"Please use the talk page before reverting the article again.",
}

func main() {
	mode := flag.String("mode", "train", "fetch|train|classify|serve")
	dataDir := flag.String("data", "data", "directory for the downloaded corpus files")
	text := flag.String("text", "", "text to classify in classify mode")
	seed := flag.Int64("seed", DEFAULT_SEED, "random seed for the split and the optimizer")
	ratio := flag.Float64("ratio", DEFAULT_RATIO, "train fraction of the corpus")
	minYear := flag.Int("min-year", DEFAULT_MIN_YEAR, "drop comments older than this year")
	snapshotPath := flag.String("snapshot", "model.gob", "path of the trained model snapshot")
	persist := flag.Bool("persist", false, "store the labeled corpus and run metrics to MySQL")
	baseline := flag.Bool("baseline", true, "also train and report the Naive Bayes baseline")
	flag.Parse()

	switch *mode {
	case "fetch":
		if _, _, err := corpus.Fetch(context.Background(), *dataDir); err != nil {
			log.Fatalf("main(): %v", err)
		}
	case "train":
		runTrain(*dataDir, *ratio, *seed, *minYear, *snapshotPath, *persist, *baseline)
	case "classify":
		runClassify(*snapshotPath, *text)
	case "serve":
		runServe(*snapshotPath, *persist)
	default:
		log.Fatalf("main(): unknown mode %q (expected fetch|train|classify|serve)", *mode)
	}
}

// runTrain is the whole batch pipeline: fetch, label, filter, clean,
// split, vectorize, fit, evaluate, probe.
func runTrain(dataDir string, ratio float64, seed int64, minYear int, snapshotPath string, persist, baseline bool) {
	commentsPath, annotationsPath, err := corpus.Fetch(context.Background(), dataDir)
	if err != nil {
		log.Fatalf("runTrain(): %v", err)
	}

	comments, err := corpus.LoadComments(commentsPath)
	if err != nil {
		log.Fatalf("runTrain(): %v", err)
	}
	annotations, err := corpus.LoadAnnotations(annotationsPath)
	if err != nil {
		log.Fatalf("runTrain(): %v", err)
	}
	log.Printf("Loaded %d comments and %d annotations", len(comments), len(annotations))

	labeled, dropped := labels.Apply(comments, labels.Aggregate(annotations))
	if dropped > 0 {
		log.Printf("Excluded %d comments with no annotations", dropped)
	}
	agreement := labels.Agreement(annotations)
	log.Printf("Annotator agreement: %d items, %d multi-annotated, %.1f%% unanimous",
		agreement.Items, agreement.MultiAnnotated, 100*agreement.UnanimityRate)

	before := len(labeled)
	filtered := corpus.FilterByYear(labeled, minYear)
	log.Printf("Year filter: removed %d comments written before %d", before-len(filtered), minYear)
	logYearDistribution(filtered)

	clean := cleaner.NewCleaner()
	for i := range filtered {
		filtered[i].Text = clean.Normalize(filtered[i].Text)
	}

	train, test := corpus.Split(filtered, ratio, seed)
	log.Printf("Split: %d train / %d test", len(train), len(test))

	v := vectorizer.New()
	trainMatrix := v.FitTransform(corpus.Texts(train))
	testMatrix := v.Transform(corpus.Texts(test))
	log.Printf("Vocabulary: %d terms", len(v.Vocabulary))

	model := svm.New(seed)
	if err := model.Fit(trainMatrix, corpus.Labels(train)); err != nil {
		log.Fatalf("runTrain(): %v", err)
	}
	log.Printf("SVM finished after %d epochs", model.Iters)

	report, err := metrics.Evaluate(corpus.Labels(test), model.Predict(testMatrix))
	if err != nil {
		log.Fatalf("runTrain(): %v", err)
	}
	fmt.Println("== linear svm ==")
	fmt.Println(report)

	snap := &svm.Snapshot{Vectorizer: v, Model: model}
	if err := snap.Save(snapshotPath); err != nil {
		log.Printf("runTrain(): %v", err)
	} else {
		log.Printf("Snapshot saved to %s", snapshotPath)
	}

	var baselineReport *metrics.Report
	if baseline {
		baselineReport = runBaseline(clean, train, test)
	}

	for _, probe := range probes {
		normalized := clean.Normalize(clean.SlugEmoji(probe))
		fmt.Printf("%q -> attack=%v (score %+.3f)\n",
			probe, snap.Classify(normalized)[0], snap.Score(normalized))
	}

	if persist {
		persistRun(filtered, train, report, baselineReport)
	}
}

func runBaseline(clean *cleaner.Cleaner, train, test []corpus.Comment) *metrics.Report {
	detector, err := bayes.Train(clean, corpus.Texts(train), corpus.Labels(train))
	if err != nil {
		log.Printf("Skipping baseline: %v", err)
		return nil
	}
	report, err := metrics.Evaluate(corpus.Labels(test), detector.PredictAll(corpus.Texts(test)))
	if err != nil {
		log.Printf("Skipping baseline: %v", err)
		return nil
	}
	fmt.Println("== naive bayes baseline ==")
	fmt.Println(report)
	return report
}

func persistRun(filtered, train []corpus.Comment, report, baselineReport *metrics.Report) {
	d, err := db.NewManager()
	if err != nil {
		log.Fatalf("persistRun(): %v", err)
	}
	defer d.Close()

	if err := d.AddComments(filtered); err != nil {
		log.Printf("persistRun(): storing comments: %v", err)
	}
	if err := d.AddRun("linear-svm", report, len(train)); err != nil {
		log.Printf("persistRun(): storing run: %v", err)
	}
	if baselineReport != nil {
		if err := d.AddRun("naive-bayes", baselineReport, len(train)); err != nil {
			log.Printf("persistRun(): storing baseline run: %v", err)
		}
	}
}

func runClassify(snapshotPath, text string) {
	if text == "" {
		log.Fatal("runClassify(): classify mode requires -text")
	}
	snap, err := svm.LoadSnapshot(snapshotPath)
	if err != nil {
		log.Fatalf("runClassify(): %v", err)
	}
	clean := cleaner.NewCleaner()
	normalized := clean.Normalize(clean.SlugEmoji(text))
	fmt.Printf("attack=%v score=%+.3f\n", snap.Classify(normalized)[0], snap.Score(normalized))
}

func runServe(snapshotPath string, persist bool) {
	snap, err := svm.LoadSnapshot(snapshotPath)
	if err != nil {
		log.Fatalf("runServe(): %v", err)
	}

	var manager *db.DBManager
	if persist {
		d, err := db.NewManager()
		if err != nil {
			log.Fatalf("runServe(): %v", err)
		}
		defer d.Close()
		manager = &d
	}

	s := NewServer(snap, manager)
	log.Printf("Starting webserver...")
	if err := s.startServer(); err != nil {
		log.Fatal(err)
	}
}

// logYearDistribution replaces the notebook's label-vs-year scatter
// with a text table.
func logYearDistribution(comments []corpus.Comment) {
	type counts struct{ ok, attack int }
	byYear := make(map[int]*counts)
	for _, c := range comments {
		if _, exists := byYear[c.Year]; !exists {
			byYear[c.Year] = &counts{}
		}
		if c.Attack {
			byYear[c.Year].attack++
		} else {
			byYear[c.Year].ok++
		}
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)
	for _, year := range years {
		log.Printf("  %d: %6d ok %5d attack", year, byYear[year].ok, byYear[year].attack)
	}
}
