// Package expplot draws grouped line charts of experiment results in the
// style of R's ggplot2.
//
//
// Data Representation: Data Frames
//
// A DataFrame is a collection of named, typed columns of equal length:
//      df.Columns["num_states"]   an Int field
//      df.Columns["mechanism"]    a String field
//      df.Columns["update_cost"]  a Float field
//
// Data frames are usually read from a file (see ReadFile) which may be a
// CSV file with a header row, a Parquet file or an Arrow IPC file.
//
//
// Types of Data Elements
//
// Internaly all values are stored as float64:
//     Float     continous data, stored as is
//     Int       discrete data, stored as the (exact) float64 value
//     String    discrete data, stored as index into the frames StringPool
// All frames derived from one frame (via Copy, Select, Filter...) share
// the same StringPool, so string values compare by index.
//
//
// Derived Columns
//
// New columns are computed from existing ones with Scale, MapStrings and
// Alias. Deriving never changes an existing column.
//
//
// Plots
//
// A Plot maps columns to the aesthetics x, y, color and linetype and
// draws one line for each combination of color and linetype level
// present in the data:
//
//     p := &Plot{
//         Data: df,
//         Aes:  AesMapping{"x": "num_states", "y": "cost", "color": "mechanism", "linetype": "algorithm"},
//     }
//     path, err := p.Save("images", "states_cost", "pdf")
//
package expplot
