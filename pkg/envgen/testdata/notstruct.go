package sample

type Mode int
