package flags

const Verbose = `v`
const Quiet = `q`
const Plain = `p`
const Help = `h`
const DryRun = `n`
const Tree = `tree`
const Confirm = `confirm`
const Strict = `strict`
