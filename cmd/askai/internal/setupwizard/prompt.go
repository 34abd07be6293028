package setupwizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/askai-cli/askai/pkg/config"
)

// prompt describes one validated input step. text carries the step header,
// its description and the input line; it is printed once per attempt.
type prompt[T any] struct {
	text     string
	def      T
	defText  string
	parse    func(string) (T, error)
	inRange  func(T) bool
	parseErr string
}

// askValue runs one bounded-retry prompt step. Empty input accepts the
// default; anything else must pass the type parser and the range predicate.
// The accepted value is echoed back exactly as typed.
func askValue[T any](w *Wizard, p prompt[T]) (T, error) {
	var zero T

	for try := 0; try < w.maxTries(); try++ {
		raw, err := w.readLine(p.text)
		if err != nil {
			return zero, err
		}

		raw = strings.TrimSpace(raw)
		if raw == "" {
			w.echoChosen(p.defText)
			return p.def, nil
		}

		v, parseErr := p.parse(raw)
		if parseErr != nil {
			w.sayInvalid(p.parseErr)
			continue
		}

		if !p.inRange(v) {
			w.sayInvalid(errOutOfRange)
			continue
		}

		w.echoChosen(raw)

		return v, nil
	}

	return zero, w.abort()
}

func positive(n int) bool { return n > 0 }

func unitRange(f float64) bool { return f >= 0 && f <= 1 }

func penaltyRange(f float64) bool { return f >= -2 && f <= 2 }

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

// floatText renders a float default the way the prompts display it, with
// one decimal so 0 reads as "0.0".
func floatText(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) }

func numAnswersPrompt(step int) prompt[int] {
	return prompt[int]{
		text: fmt.Sprintf("-> STEP %d - SET NUMBER OF ALTERNATIVE ANSWERS GENERATED PER QUESTION\n"+
			"   This is the number of answers that will be displayed when you ask\n"+
			"   a question. A high number will use more tokens.\n"+
			"   Allowed values: >0\n"+
			"Choose number of answers (press enter for default = %d): ",
			step, config.DefaultNumAnswers),
		def:      config.DefaultNumAnswers,
		defText:  strconv.Itoa(config.DefaultNumAnswers),
		parse:    strconv.Atoi,
		inRange:  positive,
		parseErr: errNotInteger,
	}
}

func maxTokensPrompt(step int) prompt[int] {
	return prompt[int]{
		text: fmt.Sprintf("-> STEP %d - SET MAXIMUM NUMBER OF TOKENS\n"+
			"   A too low number might cut your answers shortly.\n"+
			"   Allowed values: >0\n"+
			"Choose maximum number of tokens (press enter for default = %d): ",
			step, config.DefaultMaxTokens),
		def:      config.DefaultMaxTokens,
		defText:  strconv.Itoa(config.DefaultMaxTokens),
		parse:    strconv.Atoi,
		inRange:  positive,
		parseErr: errNotInteger,
	}
}

func temperaturePrompt(step int) prompt[float64] {
	return prompt[float64]{
		text: fmt.Sprintf("-> STEP %d - SET TEMPERATURE\n"+
			"   Sampling temperature to use. Higher values means\n"+
			"   the model will take more risks. Try 0.9 for more\n"+
			"   creative applications, and 0 for ones with a well-defined\n"+
			"   answer.\n"+
			"   Allowed values: 0.0 <= temperature <= 1.0\n"+
			"Choose temperature (press enter for default = %s): ",
			step, floatText(config.DefaultTemperature)),
		def:      config.DefaultTemperature,
		defText:  floatText(config.DefaultTemperature),
		parse:    parseFloat,
		inRange:  unitRange,
		parseErr: errNotFloat,
	}
}

func topPPrompt(step int) prompt[float64] {
	return prompt[float64]{
		text: fmt.Sprintf("-> STEP %d - SET TOP_P\n"+
			"   An alternative to sampling with temperature, called\n"+
			"   nucleus sampling, where the model considers the results\n"+
			"   of the tokens with top_p probability mass. So 0.1 means\n"+
			"   only the tokens comprising the top 10%% probability mass\n"+
			"   are considered.\n"+
			"   It's generally recommended to alter this or temperature, but not both!\n"+
			"   Allowed values: 0.0 <= top_p <= 1.0\n"+
			"Choose top_p (press enter for default = %s): ",
			step, floatText(config.DefaultTopP)),
		def:      config.DefaultTopP,
		defText:  floatText(config.DefaultTopP),
		parse:    parseFloat,
		inRange:  unitRange,
		parseErr: errNotFloat,
	}
}

func frequencyPenaltyPrompt(step int) prompt[float64] {
	return prompt[float64]{
		text: fmt.Sprintf("-> STEP %d - SET FREQUENCY PENALTY\n"+
			"   Positive values penalize new tokens based on their existing\n"+
			"   frequency in the text so far, decreasing the model's likelihood\n"+
			"   to repeat the same line verbatim.\n"+
			"   Allowed values: -2.0 <= frequency penalty <= 2.0\n"+
			"Choose frequency penalty (press enter for default = %s): ",
			step, floatText(config.DefaultFrequencyPenalty)),
		def:      config.DefaultFrequencyPenalty,
		defText:  floatText(config.DefaultFrequencyPenalty),
		parse:    parseFloat,
		inRange:  penaltyRange,
		parseErr: errNotFloat,
	}
}

func presencePenaltyPrompt(step int) prompt[float64] {
	return prompt[float64]{
		text: fmt.Sprintf("-> STEP %d - SET PRESENCE PENALTY\n"+
			"   Positive values penalize new tokens based on whether they appear\n"+
			"   in the text so far, increasing the model's likelihood to talk about\n"+
			"   new topics.\n"+
			"   Allowed values: -2.0 <= presence penalty <= 2.0\n"+
			"Choose presence penalty (press enter for default = %s): ",
			step, floatText(config.DefaultPresencePenalty)),
		def:      config.DefaultPresencePenalty,
		defText:  floatText(config.DefaultPresencePenalty),
		parse:    parseFloat,
		inRange:  penaltyRange,
		parseErr: errNotFloat,
	}
}
