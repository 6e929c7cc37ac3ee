package shell

import (
	"context"
	"errors"

	"promosphere/server/llm/tools"
	toolshared "promosphere/server/llm/tools/shared"
)

func runSchema(cmdProp, cmdDesc string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			cmdProp: map[string]any{
				"type":        "string",
				"description": cmdDesc,
			},
			"check": map[string]any{
				"type":        "boolean",
				"description": "Treat a non-zero exit as an error. Defaults to true.",
			},
			"cwd": map[string]any{
				"type":        "string",
				"description": "Optional working directory.",
			},
			"env": map[string]any{
				"type":        "object",
				"description": "Optional environment variable overrides.",
			},
		},
		"required": []string{cmdProp},
	}
}

func optionsFrom(input *toolshared.ToolInput) RunOptions {
	opts := RunOptions{
		Check: input.Bool("check", true),
		Cwd:   input.String("cwd"),
	}
	if overrides := input.Object("env"); len(overrides) > 0 {
		opts.Env = make(map[string]string, len(overrides))
		for k, v := range overrides {
			if s, ok := v.(string); ok {
				opts.Env[k] = s
			}
		}
	}
	return opts
}

func resultData(status string, res Result) map[string]any {
	return map[string]any{
		"status":      status,
		"return_code": res.ReturnCode,
		"stdout":      res.Stdout,
		"stderr":      res.Stderr,
	}
}

// Tools returns the CLI agent's command execution toolset.
func Tools() []tools.Tool {
	run := tools.NewFunc("cli_run",
		"Execute an arbitrary shell command. Pass the entire command as a single string, e.g. \"ls -la /tmp\".",
		runSchema("cmd", "Full command string, e.g. \"ls -la\" or \"bash script.sh\"."),
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			res, err := RunCLI(ctx, input.String("cmd"), optionsFrom(input))
			return commandResult(res, err), nil
		})

	gcloud := tools.NewFunc("cli_gcloud",
		"Execute a gcloud command. Pass only the arguments without the leading 'gcloud', "+
			"e.g. \"firestore databases create --location=eur3 --project=my-proj\".",
		runSchema("args", "Arguments for gcloud as a single string."),
		func(ctx context.Context, input *toolshared.ToolInput) (*toolshared.ToolResult, error) {
			res, err := RunGcloud(ctx, input.String("args"), optionsFrom(input))
			return commandResult(res, err), nil
		})

	return []tools.Tool{run, gcloud}
}

func commandResult(res Result, err error) *toolshared.ToolResult {
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return &toolshared.ToolResult{
				Success: false,
				Error:   err.Error(),
				Data:    resultData("error", exitErr.Result),
			}
		}
		return toolshared.ErrorResult(err)
	}
	return toolshared.SuccessResult(resultData("success", res))
}
