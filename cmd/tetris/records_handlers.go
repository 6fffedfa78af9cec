package main

import (
	"net/http"
	"strconv"
)

func handleGetRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	options := []GameRecordsOption{}
	if query.Has("username") {
		options = append(options, GameRecordsForPlayer(query.Get("username")))
	}
	if query.Has("min_lines") {
		minLines, err := strconv.Atoi(query.Get("min_lines"))
		if err != nil {
			log.Debug(err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		options = append(options, GameRecordsWithMinLines(minLines))
	}
	records, err := getGameRecords(r.Context(), options...)
	if err != nil {
		log.Error(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if _, err := sendJSON(w, records); err != nil {
		log.Error(err)
	}
}

func handleGetOwnRecords(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(ctxPlayerClaims).(*PlayerClaims)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	records, err := getGameRecords(
		r.Context(), GameRecordsForPlayer(claims.Username),
	)
	if err != nil {
		log.Error(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if _, err := sendJSON(w, records); err != nil {
		log.Error(err)
	}
}
