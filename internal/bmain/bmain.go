package bmain

import (
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/roger-dv/better-main/internal/arena"
	"github.com/roger-dv/better-main/internal/argview"
	"github.com/roger-dv/better-main/internal/util"
)

// RunBetterMain drives the demonstration flow: it sizes a backing buffer
// for the invocation, constructs a bounded arena over it, materializes the
// argument view sequence from that arena, and hands the sequence to the
// downstream consumer. The arena handle is scoped to this function and
// passed down explicitly; nothing below it allocates or owns memory.
func RunBetterMain(argv []string, out io.Writer) util.BmainCmdError {
	config, err := LoadConfig(FlagConfigFilePath)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		return util.ErrorConfig
	}
	if err := util.InitLogger(config.LogLevel); err != nil {
		log.Errorf("Failed to init logger: %v", err)
		return util.ErrorConfig
	}
	if config.LogPath != "" {
		util.SetLogFile(config.LogPath)
	}

	if FlagDumpConfig {
		text, err := config.EffectiveYaml()
		if err != nil {
			log.Errorf("Failed to render configuration: %v", err)
			return util.ErrorConfig
		}
		fmt.Fprint(out, text)
		return util.ErrorSuccess
	}

	log.Debugf("argc: %d, sizeof(view record): %d", len(argv), argview.RecordSize)

	// CapacitySlack was validated by LoadConfig.
	slack, _ := util.ParseSizeStringAsByte(config.CapacitySlack)
	seq, a, code := materialize(argv, (len(argv)+1)*argview.RecordSize+int(slack))
	if code != util.ErrorSuccess {
		return code
	}
	log.Debugf("arena after view construction: %+v", a.Metrics())

	switch pickFormat(config) {
	case "json":
		return renderJson(out, seq, a, FlagQuery)
	case "table":
		return renderTable(out, seq)
	default:
		return BetterMain(seq, out)
	}
}

// materialize constructs the bounded arena over a buffer of bufSize bytes
// scoped to this call chain and builds the argument sequence from it. An
// exhausted arena maps to the dedicated nonzero exit code instead of an
// abort.
func materialize(argv []string, bufSize int) (*argview.Sequence, *arena.Fixed, util.BmainCmdError) {
	buf := make([]byte, bufSize)
	a := arena.NewFixed(buf)

	seq, err := argview.Build(a, argv)
	if err != nil {
		var oom *arena.OutOfCapacityError
		if errors.As(err, &oom) {
			log.Errorf("Argument view allocation failed: %v", oom)
			return nil, nil, util.ErrorOutOfCapacity
		}
		log.Errorf("Argument view construction failed: %v", err)
		return nil, nil, util.ErrorCmdArg
	}
	return seq, a, util.ErrorSuccess
}

// pickFormat resolves the output mode from flags and config. Flags win.
// A table format coming from config degrades to plain when stdout is not a
// terminal, so piped output stays stable for scripts.
func pickFormat(config *Config) string {
	if FlagJson || FlagQuery != "" {
		return "json"
	}
	if FlagTable {
		return "table"
	}
	if config.OutputFormat == "table" && !util.StdoutIsTerminal() {
		return "plain"
	}
	return config.OutputFormat
}

// BetterMain is the downstream consumer of the argument sequence: it writes
// each argument as a double-quoted string, single-space separated and
// newline terminated, and returns zero unconditionally. It receives the
// sequence by reference, must not mutate it, and must not retain it.
func BetterMain(args *argview.Sequence, out io.Writer) util.BmainCmdError {
	last := args.Len() - 1
	var sb strings.Builder
	args.Each(func(i int, arg string) {
		sb.WriteByte('"')
		sb.WriteString(arg)
		sb.WriteByte('"')
		if i != last {
			sb.WriteByte(' ')
		}
	})
	sb.WriteByte('\n')
	fmt.Fprint(out, sb.String())
	return util.ErrorSuccess
}
