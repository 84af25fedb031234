// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package prompts asks the user for values a command was not given.

Prompting happens only in interactive mode. Non-interactive mode is on when
any of these holds:

  - the --non-interactive flag was given (SetNonInteractive)
  - UNC_NON_INTERACTIVE or CI is set to a truthy value
  - stdin is not a terminal

In non-interactive mode commands fail with MissingError naming every flag
that is still required, and the retry policy stops asking "Do you want to try
again?" in favour of a fixed number of attempts.

Values are taken from flags, then UNC_* environment variables, then the
--config file and defaults, and only then from a prompt.
*/
package prompts
