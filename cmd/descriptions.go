package cmd

const rootLongDescription = `Almanac reads a seed list and an ordered set of "<name> map:" sections,
each made of "<destination> <source> <length>" rules, and pushes the seeds
through every stage to find the lowest resulting location.

Seeds can be read as individual values or as (start, length) ranges. Ranges
are mapped by splitting intervals, never by visiting every number.

Configuration is read from .almanac.yaml (working directory, then home),
ALMANAC_* environment variables and flags, in increasing priority.`

const solveLongDescription = `Solve prints the lowest location reachable from the seed line.

  --mode values   every number on the seed line is one seed
  --mode ranges   numbers are read pairwise as (start, length)
  --mode both     solve both readings

With --report the outcome is also written as JSON, YAML or TOML depending on
the file extension. With --watch the almanac is solved again whenever it
changes, until interrupted.`

const inspectLongDescription = `Inspect shows the seeds and stages of an almanac.

The default table format is meant for reading; json, yaml and toml print the
parsed almanac for other tools.`

const traceLongDescription = `Trace follows seeds through every stage and shows the value after each one.

Without SEED arguments every number on the seed line is traced.`

const validateLongDescription = `Validate reports rules of one stage that claim the same values and
consecutive stages whose categories do not line up. It exits with a
non-zero status when anything is found.`

const historyLongDescription = `History lists previous solves recorded in the history database, newest first.`
