package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/hecksadecimal/piano-go/midi"
	"github.com/hecksadecimal/piano-go/model"
	"github.com/hecksadecimal/piano-go/notation"
	"github.com/hecksadecimal/piano-go/track"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the converter over HTTP",
	Long:  `Serves the converter over HTTP: POST raw MIDI bytes to /convert.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

// optionsFromQuery layers query parameters over the defaults. Absent or
// unparseable parameters keep their default.
func optionsFromQuery(r *http.Request) notation.Options {
	opts := notation.DefaultOptions()
	q := r.URL.Query()
	if v, err := strconv.ParseFloat(q.Get("tick_lag"), 64); err == nil {
		opts.TickLag = v
	}
	if v, err := strconv.Atoi(q.Get("transpose")); err == nil {
		opts.OctaveTranspose = v
	}
	if v, err := strconv.Atoi(q.Get("line_length")); err == nil {
		opts.MaxLineLength = v
	}
	if v, err := strconv.Atoi(q.Get("lines")); err == nil {
		opts.MaxLineCount = v
	}
	if v, err := strconv.Atoi(q.Get("precision")); err == nil {
		opts.Precision = v
	}
	return opts
}

// HandleConvert accepts raw SMF bytes in the request body and responds
// with the rendered notation as plain text.
func HandleConvert(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	op, err := midi.Parse(body)
	if err != nil {
		logrus.WithField("request", id).WithError(err).Warn("unparseable midi payload")
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	song := track.NewSong(op)
	selected, err := song.Selection()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	text := notation.Convert(selected, optionsFromQuery(r))
	logrus.WithFields(logrus.Fields{
		"request": id,
		"title":   song.Title(),
		"bytes":   len(body),
		"chars":   len(text),
	}).Info("converted")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(text))
}

func serve() error {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	handler := cors.Default().Handler(router)

	logrus.WithField("addr", serveAddr).Info("listening")
	return http.ListenAndServe(serveAddr, handler)
}
