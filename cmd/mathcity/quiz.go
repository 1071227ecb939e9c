package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-city/internal/city"
	"github.com/vovakirdan/math-city/internal/engine"
	"github.com/vovakirdan/math-city/internal/journal"
	"github.com/vovakirdan/math-city/internal/mathgen"
)

var flagCount int

var quizCmd = &cobra.Command{
	Use:   "quiz [kind]",
	Short: "Practice problems on the console",
	Long: `Asks a series of problems and checks each answer, without the board.
With a kind, every problem is for that building; otherwise kinds rotate.
Answers may be expressions such as 12*7.

Examples:
  mathcity quiz
  mathcity quiz factory --count 3
  mathcity quiz house --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().IntVarP(&flagCount, "count", "n", 5, "Number of problems")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	kinds := city.Kinds()
	if len(args) == 1 {
		k, err := city.ParseKind(args[0])
		if err != nil {
			return fmt.Errorf("%w (run 'mathcity kinds' to list them)", err)
		}
		kinds = []city.Kind{k}
	}
	if flagCount <= 0 {
		return fmt.Errorf("--count must be positive, got %d", flagCount)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	history, err := journal.Open()
	if err != nil {
		return err
	}
	defer history.Close()

	q := quiz{
		in:       bufio.NewScanner(cmd.InOrStdin()),
		out:      cmd.OutOrStdout(),
		problems: mathgen.NewGenerator(flagSeed),
		kinds:    kinds,
		history:  history,
		logger:   logger,
	}
	return q.run(flagCount)
}

// quiz is a line-oriented practice session.
type quiz struct {
	in       *bufio.Scanner
	out      io.Writer
	problems engine.ProblemSource
	kinds    []city.Kind
	history  *journal.Journal
	logger   *log.Logger
}

// run asks up to count problems. It stops early at end of input.
func (q quiz) run(count int) error {
	for i := 0; i < count; i++ {
		k := q.kinds[i%len(q.kinds)]
		p := q.problems.Generate(k)

		fmt.Fprintf(q.out, "[%d/%d] %s\n> ", i+1, count, p.Question)
		if !q.in.Scan() {
			fmt.Fprintln(q.out)
			break
		}
		input := q.in.Text()

		correct := mathgen.Check(p, input)
		if correct {
			fmt.Fprintln(q.out, "Correct!")
		} else {
			fmt.Fprintf(q.out, "Incorrect. The answer is %s.\n", p.Answer)
		}

		err := q.history.Record(engine.Attempt{
			Building:    k,
			ProblemKind: p.Kind,
			Question:    p.Question,
			Answer:      p.Answer,
			Input:       input,
			Correct:     correct,
		})
		if err != nil {
			q.logger.Warn("could not record attempt", "error", err)
		}
		q.logger.Debug("answer checked", "building", k.String(), "problem", p.Kind, "correct", correct)
	}
	if err := q.in.Err(); err != nil {
		return fmt.Errorf("cannot read answers: %w", err)
	}

	correct, incorrect, err := q.history.Counts()
	if err != nil {
		return err
	}
	fmt.Fprintf(q.out, "\n%d correct, %d incorrect\n", correct, incorrect)
	q.logger.Info("quiz finished", "session", q.history.SessionID(), "correct", correct, "incorrect", incorrect)
	return nil
}
