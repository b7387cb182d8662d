/*

Diseasemap fits Bayesian spatial and spatio-temporal disease-mapping
models (BYM, Leroux and a linear-time spatio-temporal Leroux variant) to
areal count data using Markov-chain Monte-Carlo sampling.

The basic usage looks like this:

	diseasemap bym incidence.csv

, this will run the BYM model with the Metropolis-Hastings sampler.

You can change the model and the method:

	diseasemap --method lbfgsb leroux incidence.csv

The above will compute a maximum-a-posteriori estimate for the static
Leroux model instead of sampling.

To see all the options run:

	diseasemap --help

*/
package main

import (
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"
)

// These variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = "branch: " + gitbranch + ", revision: " + githash + ", build time: " + buildstamp

// Logger settings.
var log = logging.MustGetLogger("diseasemap")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("diseasemap", "Bayesian disease mapping for areal count data").Version(version)

	// model and input
	model        = app.Arg("model", "model variant (bym, leroux or lerouxst)").Required().String()
	dataFileName = app.Arg("data", "input table with counts, covariate and neighbor lists").Required().ExistingFile()

	// input columns
	obsCol = app.Flag("ycol", "observed-count column name").Default("y").String()
	expCol = app.Flag("ecol", "expected-count column name").Default("E").String()
	covCol = app.Flag("xcol", "covariate column name").Default("x").String()
	adjCol = app.Flag("adjcol", "neighbor-list column name").Default("adj").String()

	// model parameters
	sumVar = app.Flag("sumvar", "variance of the soft sum-to-zero constraints").Default("0.001").Float64()

	// synthetic panel parameters (lerouxst)
	timeSteps  = app.Flag("tsteps", "number of synthetic time steps (lerouxst)").Default("5").Int()
	growthStep = app.Flag("growthstep", "per-step multiplicative growth increment (lerouxst)").Default("0.05").Float64()
	slopeSD    = app.Flag("slopesd", "per-area temporal-growth perturbation SD (lerouxst)").Default("0.1").Float64()
	xNoiseSD   = app.Flag("xnoise", "covariate noise SD (lerouxst)").Default("0.1").Float64()
	eNoiseSD   = app.Flag("enoise", "expected-count noise SD (lerouxst)").Default("0.5").Float64()

	// sampler parameters
	method = app.Flag("method", "method to use "+
		"(mh: Metropolis-Hastings, "+
		"annealing: simulated annealing, "+
		"lbfgsb: maximum a posteriori via L-BFGS-B, "+
		"none: just compute the log-posterior"+
		")").Default("mh").String()
	iterations = app.Flag("iter", "number of iterations").Default("10000").Int()
	report     = app.Flag("report", "report every N iterations").Default("10").Int()
	accept     = app.Flag("accept", "report acceptance rate every N iterations").Default("200").Int()
	nChains    = app.Flag("chains", "number of independent chains (mh only)").Default("4").Int()
	burnIn     = app.Flag("burnin", "number of burn-in iterations (20% by default)").Default("-1").Int()
	thin       = app.Flag("thin", "record every N-th draw").Default("1").Int()
	level      = app.Flag("level", "central credible-interval level").Default("0.95").Float64()
	randomize  = app.Flag("randomize", "use random starting points for extra chains").Bool()

	// adaptive mcmc parameters
	adaptive = app.Flag("adaptive", "use adaptive MCMC proposals").Bool()
	skip     = app.Flag("skip", "number of iterations to skip for adaptive mcmc (5% by default)").Default("-1").Int()
	maxAdapt = app.Flag("maxadapt", "stop adapting after iteration (20% by default)").Default("-1").Int()

	// technical
	seed       = app.Flag("seed", "random generator seed, default time based").Default("-1").Int64()
	cpuProfile = app.Flag("cpuprofile", "write cpu profile to file").String()

	// checkpoints
	checkpointFileName = app.Flag("checkpoint", "checkpoint database filename (single chain only)").String()
	checkpointInterval = app.Flag("cpint", "checkpoint interval in seconds").Default("30").Float64()

	// input/output
	outLogF  = app.Flag("log", "write log to a file").String()
	outF     = app.Flag("out", "write sampling trajectory to a file").String()
	outTrace = app.Flag("trace", "write pooled posterior draws to a file").String()
	startF   = app.Flag("start", "read start position from a trajectory or JSON file").ExistingFile()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json output to a file").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	lvl, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	for _, pkg := range []string{"diseasemap", "areal", "smodel", "sample", "checkpoint"} {
		logging.SetLevel(lvl, pkg)
	}

	// print revision
	log.Info(version)

	// print command line
	log.Info("Command line:", os.Args)

	if *seed < 0 {
		*seed = time.Now().UnixNano()
		log.Debug("Using time-based random seed")
	}
	log.Infof("Random seed=%v", *seed)
	rand.Seed(*seed)

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	summary := run()

	if *jsonF != "" {
		if err := writeJSON(*jsonF, summary); err != nil {
			log.Error("Error writing JSON summary: ", err)
		}
	}
}
